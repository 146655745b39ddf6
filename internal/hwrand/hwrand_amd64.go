//go:build amd64

package hwrand

import "golang.org/x/sys/cpu"

// Feature bits are resolved by x/sys/cpu from CPUID during package
// initialization and never change afterward.
var (
	hasRDRAND = cpu.X86.HasRDRAND
	hasRDSEED = cpu.X86.HasRDSEED
	hasAES    = cpu.X86.HasAES
)

// rdrand64 executes RDRAND. ok is false when the carry flag reported an
// unavailable value, in which case val is 0.
//
//go:noescape
func rdrand64() (val uint64, ok bool)

// rdseed64 executes RDSEED with the same failure convention as rdrand64.
//
//go:noescape
func rdseed64() (val uint64, ok bool)

// aesenc128 executes one AESENC round of *block with *key, storing the
// result back into *block. Callers must ensure AES-NI support first.
//
//go:noescape
func aesenc128(block, key *[16]byte)
