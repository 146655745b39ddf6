package uuidv4

import "errors"

// All constructor failures wrap one of the sentinel errors below, so
// callers can match with errors.Is. Generation itself cannot fail: once a
// Generator exists, Next always returns a value.
var (
	// ErrNilEngine is returned when NewGenerator receives a nil engine.
	ErrNilEngine = errors.New("uuidv4: entropy engine is required")

	// ErrEngineRange is returned when an engine declares Min greater
	// than Max.
	ErrEngineRange = errors.New("uuidv4: entropy engine declares an empty range")

	// ErrSeedWithEngine is returned when WithSeed is combined with a
	// caller-supplied engine. Seeds configure the built-in engine only.
	ErrSeedWithEngine = errors.New("uuidv4: seed option conflicts with custom engine")

	// ErrEntropySeed is returned when the operating system entropy
	// source cannot key the default engine.
	ErrEntropySeed = errors.New("uuidv4: reading entropy seed failed")

	// ErrBufferLength is returned by FromBytes for input that is not
	// exactly 16 bytes.
	ErrBufferLength = errors.New("uuidv4: buffer must be exactly 16 bytes")
)
