package uuidv4

import (
	"encoding/binary"

	"github.com/jdziat/uuidv4-go/internal/hwrand"
)

// HardwareSupport records which CPU entropy features are usable. Flags are
// resolved once per process; on architectures without these instructions
// every flag is false at compile time.
type HardwareSupport struct {
	// RDRAND reports the on-chip DRBG random instruction.
	RDRAND bool

	// RDSEED reports the slower, conditioning entropy instruction.
	RDSEED bool

	// AES reports AES-NI, used for one round of output whitening.
	AES bool
}

// DetectHardware returns the entropy features of the running CPU.
func DetectHardware() HardwareSupport {
	return HardwareSupport{
		RDRAND: hwrand.RandSupported(),
		RDSEED: hwrand.SeedSupported(),
		AES:    hwrand.AESSupported(),
	}
}

// randomAvailable reports whether any hardware random source exists.
func (h HardwareSupport) randomAvailable() bool {
	return h.RDRAND || h.RDSEED
}

// Whitening key halves, chosen as two well-known mixing constants.
const (
	whitenKeyLo = 0x9e3779b9
	whitenKeyHi = 0x1b873593
)

var whitenKey = func() [16]byte {
	var k [16]byte
	binary.LittleEndian.PutUint64(k[0:8], whitenKeyLo)
	binary.LittleEndian.PutUint64(k[8:16], whitenKeyHi)
	return k
}()

// fillHardware fills u from hardware entropy. It reports whether the fill
// succeeded and whether RDSEED supplied the bytes. A draw pair that comes
// back all-zero is treated as instruction failure: both instructions signal
// exhaustion with a zero output, and a genuine all-zero random pair has
// probability 2^-128 per source.
func fillHardware(u *UUID, h HardwareSupport) (usedSeed, ok bool) {
	var lo, hi uint64

	if h.RDRAND {
		lo, hi = hwrand.Rand(), hwrand.Rand()
	}
	if lo == 0 && hi == 0 {
		if !h.RDSEED {
			return false, false
		}
		lo, hi = hwrand.Seed(), hwrand.Seed()
		if lo == 0 && hi == 0 {
			return false, false
		}
		usedSeed = true
	}

	binary.NativeEndian.PutUint64(u[0:8], lo)
	binary.NativeEndian.PutUint64(u[8:16], hi)

	if h.AES {
		hwrand.MixRound((*[16]byte)(u), &whitenKey)
	}
	return usedSeed, true
}
