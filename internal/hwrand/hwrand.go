// Package hwrand exposes the CPU's hardware random number facilities:
// RDRAND and RDSEED draws plus a single AES-NI encryption round used for
// whitening. Capability flags are read once per process during package
// initialization; every later query is a plain read with no side effects.
//
// On architectures without these instructions all capabilities report false
// at compile time and the draw functions return zero, so callers can treat
// a zero draw as "no hardware entropy" uniformly.
package hwrand

// RandSupported reports whether the CPU provides the RDRAND instruction.
func RandSupported() bool { return hasRDRAND }

// SeedSupported reports whether the CPU provides the RDSEED instruction.
func SeedSupported() bool { return hasRDSEED }

// AESSupported reports whether the CPU provides AES-NI.
func AESSupported() bool { return hasAES }

// Rand performs one 64-bit RDRAND draw. It returns 0 when the instruction is
// unsupported or the CPU signals that no random value was available. There is
// no retry; callers decide how to treat a zero draw.
func Rand() uint64 {
	if !hasRDRAND {
		return 0
	}
	v, ok := rdrand64()
	if !ok {
		return 0
	}
	return v
}

// Seed performs one 64-bit RDSEED draw. It returns 0 when the instruction is
// unsupported or the entropy conditioner had nothing to give.
func Seed() uint64 {
	if !hasRDSEED {
		return 0
	}
	v, ok := rdseed64()
	if !ok {
		return 0
	}
	return v
}

// MixRound applies one forward AES encryption round to block in place, using
// key as the round key. The block is left untouched when AES-NI is
// unavailable.
func MixRound(block, key *[16]byte) {
	if !hasAES {
		return
	}
	aesenc128(block, key)
}
