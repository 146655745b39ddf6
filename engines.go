package uuidv4

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	mrand "math/rand/v2"
)

// splitmix64 advances the given state and returns the next output. Used to
// expand a single 64-bit seed into wider engine state without correlated
// words.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// ChaCha8 is the default software engine: a cryptographically strong
// stream generator with 64-bit output. It is the engine New installs when
// no custom engine is supplied.
type ChaCha8 struct {
	src *mrand.ChaCha8
}

var _ Engine[uint64] = (*ChaCha8)(nil)

// NewChaCha8 builds a deterministic engine from a 64-bit seed. The seed is
// expanded to the full 32-byte key through a splitmix64 chain, so nearby
// seeds still produce unrelated streams.
func NewChaCha8(seed uint64) *ChaCha8 {
	var key [32]byte
	state := seed
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], splitmix64(&state))
	}
	return &ChaCha8{src: mrand.NewChaCha8(key)}
}

// NewCryptoChaCha8 builds an engine keyed from the operating system
// entropy source. This is the only engine constructor that can fail.
func NewCryptoChaCha8() (*ChaCha8, error) {
	var key [32]byte
	if _, err := io.ReadFull(crand.Reader, key[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropySeed, err)
	}
	return &ChaCha8{src: mrand.NewChaCha8(key)}, nil
}

// Next returns the next 64-bit word.
func (e *ChaCha8) Next() uint64 { return e.src.Uint64() }

// Min returns 0.
func (e *ChaCha8) Min() uint64 { return 0 }

// Max returns the largest 64-bit value.
func (e *ChaCha8) Max() uint64 { return math.MaxUint64 }

// PCG is a small, fast, statistically strong engine. It is cheaper than
// ChaCha8 and suited to workloads where identifiers need no unpredictability
// guarantees, such as tests and simulations.
type PCG struct {
	src *mrand.PCG
}

var _ Engine[uint64] = (*PCG)(nil)

// NewPCG builds a deterministic engine from a 64-bit seed. The second
// state word is derived from the seed so the full 128-bit state is filled.
func NewPCG(seed uint64) *PCG {
	state := seed
	return &PCG{src: mrand.NewPCG(seed, splitmix64(&state))}
}

// Next returns the next 64-bit word.
func (e *PCG) Next() uint64 { return e.src.Uint64() }

// Min returns 0.
func (e *PCG) Min() uint64 { return 0 }

// Max returns the largest 64-bit value.
func (e *PCG) Max() uint64 { return math.MaxUint64 }
