//go:build !amd64

package hwrand

// No hardware entropy instructions on this architecture. The constants let
// the compiler drop the hardware branches entirely.
const (
	hasRDRAND = false
	hasRDSEED = false
	hasAES    = false
)

func rdrand64() (uint64, bool) { return 0, false }

func rdseed64() (uint64, bool) { return 0, false }

func aesenc128(block, key *[16]byte) {}
