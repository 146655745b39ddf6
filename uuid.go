package uuidv4

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Size is the length of a UUID in bytes.
const Size = 16

// UUID is a 128-bit universally unique identifier. The zero value is the
// nil UUID (all zeroes). Values are plain arrays: copying is cheap and a
// UUID is usable as a map key.
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// FromBytes builds a UUID from a 16-byte slice. The only failure mode is a
// wrong length; byte content is never inspected, so callers can round-trip
// arbitrary 16-byte payloads.
func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: got %d bytes", ErrBufferLength, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns a copy of the UUID as a byte slice.
func (u UUID) Bytes() []byte {
	return u[:]
}

// String renders the canonical lowercase hyphenated form, for example
// "e5a9d1d2-8c3f-4b21-9e6a-07c4f1b2d3e4". The result is always 36
// characters with hyphens at positions 8, 13, 18 and 23.
func (u UUID) String() string {
	var s [36]byte
	encodeCanonical(s[:], &u)
	return string(s[:])
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (u UUID) MarshalText() ([]byte, error) {
	s := make([]byte, 36)
	encodeCanonical(s, &u)
	return s, nil
}

// encodeCanonical writes the 36-character form into dst, which must have
// room for 36 bytes.
func encodeCanonical(dst []byte, u *UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Compare orders two UUIDs lexicographically by byte, returning -1, 0 or
// +1. The ordering matches sorting the canonical string forms.
func (u UUID) Compare(v UUID) int {
	return bytes.Compare(u[:], v[:])
}

// Valid reports whether the UUID carries the version-4 and RFC 4122
// variant bits. Values built through FromBytes may legitimately fail this.
func (u UUID) Valid() bool {
	return u[6]&0xF0 == 0x40 && u[8]&0xC0 == 0x80
}

// Version returns the version nibble (4 for generated values).
func (u UUID) Version() byte {
	return u[6] >> 4
}

// Variant returns the two variant bits (0b10 for generated values).
func (u UUID) Variant() byte {
	return u[8] >> 6
}
