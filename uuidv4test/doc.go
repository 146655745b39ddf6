// Package uuidv4test provides testing utilities for applications using the
// uuidv4-go library.
//
// # Deterministic Generator
//
// Use NewDeterministic for a generator that replays the same sequence on
// every run, so tests can assert against stored identifiers:
//
//	func TestMyFeature(t *testing.T) {
//	    gen := uuidv4test.NewDeterministic(t, 42)
//
//	    id := gen.Next()
//	    // id is the same on every run
//	}
//
// # Layout Assertions
//
// Use AssertValid to check a value carries the version-4 layout:
//
//	uuidv4test.AssertValid(t, id)
//
// # Mock Metrics and Logging
//
// Use MockMetrics and MockLogger to verify generator telemetry:
//
//	metrics := uuidv4test.NewMockMetrics()
//	gen, _ := uuidv4.New(uuidv4.WithMetrics(metrics))
//
//	gen.Next()
//	if metrics.GetCounter("uuidv4.generate.hardware") == 0 {
//	    // ...
//	}
package uuidv4test
