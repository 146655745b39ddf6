// Package uuidv4 generates 128-bit version-4 UUIDs from a hybrid entropy
// pipeline: hardware randomness (RDRAND/RDSEED, whitened through a single
// AES round when AES-NI is present) with a seamless fallback to a seeded
// pseudo-random engine. Every produced value carries the version-4/variant-1
// bit layout regardless of which path filled it.
//
// # Quick Start
//
// Create a generator and draw identifiers:
//
//	gen, err := uuidv4.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id := gen.Next()
//	fmt.Println(id) // e.g. 4f1c9e2a-8d3b-4c6e-b1a7-2f0e9d8c7b6a
//
// Next never fails: hardware exhaustion degrades silently to the software
// engine within the same call.
//
// # Configuration
//
// Construction accepts functional options:
//
//	gen, err := uuidv4.New(
//	    uuidv4.WithSeed(42),       // deterministic software engine
//	    uuidv4.WithSoftwareOnly(), // skip the hardware path entirely
//	)
//
// Any pseudo-random engine satisfying [Engine] can replace the built-in one
// without touching UUID logic:
//
//	gen, err := uuidv4.NewGenerator[uint64](myEngine)
//
// # Thread Safety
//
// A [Generator] is not safe for unsynchronized concurrent use: the software
// path advances the engine state on every fill. Either give each goroutine
// its own Generator or serialize calls to Next with a mutex. Hardware
// capability flags are detected once per process and are safe to read from
// any goroutine.
//
// # Subpackages
//
//   - [github.com/jdziat/uuidv4-go/uuidv4test]: test helpers, including a
//     deterministic software-only generator and layout assertions.
//
// # Examples
//
// See the examples directory for complete working programs:
//   - examples/basic: generate-and-print loop
//   - examples/requesttracker: correlation IDs in structured logs
//   - examples/pool: concurrent pre-generation pool
//   - examples/ttlcache: TTL + LRU cache keyed by UUID
//   - examples/benchmark: a custom engine raced against the default
//   - examples/shardedstore: sharded key-value store with UUID shard keys
package uuidv4

// Version is the current library version, used for debugging output.
const Version = "1.0.0"
