package uuidv4test

import (
	uuidv4 "github.com/jdziat/uuidv4-go"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Helper()
}

// NewDeterministic creates a software-only generator keyed with the given
// seed. The sequence it produces is identical on every run and every
// machine, hardware features included.
func NewDeterministic(t TestingT, seed uint64) *uuidv4.Generator[uint64] {
	t.Helper()

	gen, err := uuidv4.New(
		uuidv4.WithSeed(seed),
		uuidv4.WithSoftwareOnly(),
	)
	if err != nil {
		t.Fatalf("uuidv4test: failed to create deterministic generator: %v", err)
	}
	return gen
}

// NewSoftware creates a software-only generator keyed from the operating
// system entropy source. Use it when a test needs unpredictable values but
// must not depend on CPU features.
func NewSoftware(t TestingT) *uuidv4.Generator[uint64] {
	t.Helper()

	gen, err := uuidv4.New(uuidv4.WithSoftwareOnly())
	if err != nil {
		t.Fatalf("uuidv4test: failed to create software generator: %v", err)
	}
	return gen
}

// AssertValid fails the test when u does not carry the version-4 layout.
func AssertValid(t TestingT, u uuidv4.UUID) {
	t.Helper()

	if !u.Valid() {
		t.Errorf("uuidv4test: %s is not a valid v4 UUID (version %d, variant %b)",
			u, u.Version(), u.Variant())
	}
}

// CollectUnique draws count values and fails the test on any duplicate.
// It returns the drawn values in order.
func CollectUnique(t TestingT, gen *uuidv4.Generator[uint64], count int) []uuidv4.UUID {
	t.Helper()

	out := make([]uuidv4.UUID, 0, count)
	seen := make(map[uuidv4.UUID]struct{}, count)

	for i := 0; i < count; i++ {
		u := gen.Next()
		if _, dup := seen[u]; dup {
			t.Fatalf("uuidv4test: duplicate UUID after %d draws: %s", i, u)
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
