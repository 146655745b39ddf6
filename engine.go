package uuidv4

import (
	"encoding/binary"
	"fmt"
)

// Word is the set of output widths an entropy engine may produce. Each
// width is a fixed-size unsigned integer; platform-width types are
// excluded so byte packing is identical on every architecture.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Engine is a pseudo-random word source. Implementations advance internal
// state on every Next call. Min and Max declare the inclusive output range
// and exist for documentation and construction-time validation; generation
// never consults them.
//
// An Engine needs no synchronization of its own: the owning Generator
// inherits whatever concurrency contract the engine has.
type Engine[W Word] interface {
	// Next returns the next word and advances the engine state.
	Next() W

	// Min returns the smallest value Next can produce.
	Min() W

	// Max returns the largest value Next can produce.
	Max() W
}

// wordBytes returns the byte width of W. The all-ones pattern is widened
// to uint64 so the shift is in range for every instantiation.
func wordBytes[W Word]() int {
	n := 1
	for v := uint64(^W(0)); v > 0xFF; v >>= 8 {
		n++
	}
	return n
}

// putWord writes w into dst in native byte order, truncated to the space
// remaining in dst, and returns the number of bytes written.
func putWord[W Word](dst []byte, w W) int {
	var scratch [8]byte
	width := wordBytes[W]()
	switch width {
	case 1:
		scratch[0] = byte(w)
	case 2:
		binary.NativeEndian.PutUint16(scratch[:2], uint16(w))
	case 4:
		binary.NativeEndian.PutUint32(scratch[:4], uint32(w))
	default:
		binary.NativeEndian.PutUint64(scratch[:8], uint64(w))
	}
	n := copy(dst, scratch[:width])
	return n
}

// validateEngine checks the construction-time engine contract.
func validateEngine[W Word](e Engine[W]) error {
	if e == nil {
		return ErrNilEngine
	}
	if min, max := e.Min(), e.Max(); min > max {
		return fmt.Errorf("%w: min %d > max %d", ErrEngineRange, min, max)
	}
	return nil
}
