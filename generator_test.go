package uuidv4

import (
	"encoding/binary"
	"errors"
	"sync"
	"testing"
)

// recordedMetrics captures counter increments for assertions.
type recordedMetrics struct {
	counters map[string]int64
}

func newRecordedMetrics() *recordedMetrics {
	return &recordedMetrics{counters: make(map[string]int64)}
}

func (m *recordedMetrics) IncrementCounter(name string, value int64) {
	m.counters[name] += value
}

// recordedLogger counts messages per level.
type recordedLogger struct {
	debugs, infos, warns, errs int
}

func (l *recordedLogger) Debug(msg string, args ...any) { l.debugs++ }
func (l *recordedLogger) Info(msg string, args ...any)  { l.infos++ }
func (l *recordedLogger) Warn(msg string, args ...any)  { l.warns++ }
func (l *recordedLogger) Error(msg string, args ...any) { l.errs++ }

func TestNew(t *testing.T) {
	gen, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	u := gen.Next()
	if !u.Valid() {
		t.Errorf("Next() = %s, not a valid v4 UUID", u)
	}
}

func TestNew_SeededDeterministic(t *testing.T) {
	a := Must(New(WithSeed(42), WithSoftwareOnly()))
	b := Must(New(WithSeed(42), WithSoftwareOnly()))

	for i := 0; i < 16; i++ {
		av, bv := a.Next(), b.Next()
		if av != bv {
			t.Fatalf("draw %d: %s != %s for identical seeds", i, av, bv)
		}
	}
}

func TestNew_SeedsDiffer(t *testing.T) {
	a := Must(New(WithSeed(1), WithSoftwareOnly()))
	b := Must(New(WithSeed(2), WithSoftwareOnly()))

	if av, bv := a.Next(), b.Next(); av == bv {
		t.Errorf("seeds 1 and 2 produced the same first UUID %s", av)
	}
}

// TestGenerator_SeededSequence pins the documented reproducibility
// scenario: seed 42, hardware off, two sequential draws.
func TestGenerator_SeededSequence(t *testing.T) {
	gen := Must(New(WithSeed(42), WithSoftwareOnly()))

	first := gen.Next()
	second := gen.Next()

	if first == second {
		t.Fatalf("sequential draws returned the same UUID %s", first)
	}
	if !first.Valid() || !second.Valid() {
		t.Errorf("draws %s, %s are not both valid v4 UUIDs", first, second)
	}

	stats := gen.Stats()
	if stats.Software != 2 {
		t.Errorf("Stats().Software = %d, want 2", stats.Software)
	}
	if stats.Hardware != 0 {
		t.Errorf("Stats().Hardware = %d, want 0 with hardware disabled", stats.Hardware)
	}

	// The same seed replays the same two values.
	replay := Must(New(WithSeed(42), WithSoftwareOnly()))
	if r := replay.Next(); r != first {
		t.Errorf("replayed first draw = %s, want %s", r, first)
	}
	if r := replay.Next(); r != second {
		t.Errorf("replayed second draw = %s, want %s", r, second)
	}
}

func TestGenerator_LayoutBitsAlways(t *testing.T) {
	gen := Must(New(WithSeed(0), WithSoftwareOnly()))

	for i := 0; i < 4096; i++ {
		u := gen.Next()
		if u[6]&0xF0 != 0x40 {
			t.Fatalf("draw %d: byte 6 = %#x, version nibble not 4", i, u[6])
		}
		if u[8]&0xC0 != 0x80 {
			t.Fatalf("draw %d: byte 8 = %#x, variant bits not 10", i, u[8])
		}
	}
}

func TestGenerator_Unique(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k uniqueness run in short mode")
	}

	gen, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const count = 100_000
	seen := make(map[UUID]struct{}, count)

	for i := 0; i < count; i++ {
		u := gen.Next()
		if _, dup := seen[u]; dup {
			t.Fatalf("duplicate UUID after %d draws: %s", i, u)
		}
		seen[u] = struct{}{}
	}
}

func TestGenerator_UniqueAcrossGoroutines(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 2048

	ids := make(chan UUID, goroutines*perGoroutine)
	var wg sync.WaitGroup

	// One generator per goroutine: a Generator itself is single-owner.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen, err := New()
			if err != nil {
				t.Errorf("New() error = %v", err)
				return
			}
			for j := 0; j < perGoroutine; j++ {
				ids <- gen.Next()
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[UUID]struct{}, goroutines*perGoroutine)
	for u := range ids {
		if _, dup := seen[u]; dup {
			t.Fatalf("duplicate UUID across generators: %s", u)
		}
		seen[u] = struct{}{}
	}

	if len(seen) != goroutines*perGoroutine {
		t.Errorf("collected %d unique UUIDs, want %d", len(seen), goroutines*perGoroutine)
	}
}

func TestNewGenerator_NilEngine(t *testing.T) {
	_, err := NewGenerator[uint64](nil)
	if !errors.Is(err, ErrNilEngine) {
		t.Errorf("NewGenerator(nil) error = %v, want ErrNilEngine", err)
	}
}

func TestNewGenerator_BadRange(t *testing.T) {
	_, err := NewGenerator[uint64](badRangeEngine{})
	if !errors.Is(err, ErrEngineRange) {
		t.Errorf("NewGenerator(badRange) error = %v, want ErrEngineRange", err)
	}
}

func TestNewGenerator_SeedConflict(t *testing.T) {
	_, err := NewGenerator[uint64](NewChaCha8(1), WithSeed(42))
	if !errors.Is(err, ErrSeedWithEngine) {
		t.Errorf("NewGenerator(engine, WithSeed) error = %v, want ErrSeedWithEngine", err)
	}
}

func TestNewGenerator_CustomEngine(t *testing.T) {
	gen, err := NewGenerator[uint64](NewPCG(42), WithSoftwareOnly())
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	u := gen.Next()
	if !u.Valid() {
		t.Errorf("Next() = %s, not a valid v4 UUID", u)
	}

	// Same engine state replays the same value.
	replay := Must(NewGenerator[uint64](NewPCG(42), WithSoftwareOnly()))
	if r := replay.Next(); r != u {
		t.Errorf("replayed draw = %s, want %s", r, u)
	}
}

// TestGenerator_FillCoversAllBytes drives a constant engine through every
// supported width and checks the whole value is engine-filled, with the
// layout stamp applied on top.
func TestGenerator_FillCoversAllBytes(t *testing.T) {
	// 0xAB & 0x0F | 0x40 = 0x4B; 0xAB & 0x3F | 0x80 = 0xAB.
	check := func(t *testing.T, u UUID) {
		t.Helper()
		for i, b := range u {
			want := byte(0xAB)
			if i == 6 {
				want = 0x4B
			}
			if b != want {
				t.Fatalf("byte %d = %#x, want %#x (%s)", i, b, want, u)
			}
		}
	}

	t.Run("uint8", func(t *testing.T) {
		gen := Must(NewGenerator[uint8](&fixedEngine[uint8]{value: 0xAB}, WithSoftwareOnly()))
		check(t, gen.Next())
	})
	t.Run("uint16", func(t *testing.T) {
		gen := Must(NewGenerator[uint16](&fixedEngine[uint16]{value: 0xABAB}, WithSoftwareOnly()))
		check(t, gen.Next())
	})
	t.Run("uint32", func(t *testing.T) {
		gen := Must(NewGenerator[uint32](&fixedEngine[uint32]{value: 0xABABABAB}, WithSoftwareOnly()))
		check(t, gen.Next())
	})
	t.Run("uint64", func(t *testing.T) {
		gen := Must(NewGenerator[uint64](&fixedEngine[uint64]{value: 0xABABABABABABABAB}, WithSoftwareOnly()))
		check(t, gen.Next())
	})
}

// TestGenerator_DrawCounts verifies the engine advances by exactly the
// draws needed for one fill at each width.
func TestGenerator_DrawCounts(t *testing.T) {
	t.Run("uint8 takes 16", func(t *testing.T) {
		e := &fixedEngine[uint8]{value: 1}
		Must(NewGenerator[uint8](e, WithSoftwareOnly())).Next()
		if e.calls != 16 {
			t.Errorf("engine advanced %d times, want 16", e.calls)
		}
	})
	t.Run("uint16 takes 8", func(t *testing.T) {
		e := &fixedEngine[uint16]{value: 1}
		Must(NewGenerator[uint16](e, WithSoftwareOnly())).Next()
		if e.calls != 8 {
			t.Errorf("engine advanced %d times, want 8", e.calls)
		}
	})
	t.Run("uint32 takes 4", func(t *testing.T) {
		e := &fixedEngine[uint32]{value: 1}
		Must(NewGenerator[uint32](e, WithSoftwareOnly())).Next()
		if e.calls != 4 {
			t.Errorf("engine advanced %d times, want 4", e.calls)
		}
	})
	t.Run("uint64 takes 2", func(t *testing.T) {
		e := &fixedEngine[uint64]{value: 1}
		Must(NewGenerator[uint64](e, WithSoftwareOnly())).Next()
		if e.calls != 2 {
			t.Errorf("engine advanced %d times, want 2", e.calls)
		}
	})
}

// TestGenerator_NativeOrderPacking checks software fills pack words in
// native byte order, matching what binary.NativeEndian would write.
func TestGenerator_NativeOrderPacking(t *testing.T) {
	e := &fixedEngine[uint32]{value: 0x11223344}
	gen := Must(NewGenerator[uint32](e, WithSoftwareOnly()))
	u := gen.Next()

	var want [4]byte
	binary.NativeEndian.PutUint32(want[:], 0x11223344)

	// Bytes 0-3 carry the first word untouched by the layout stamp.
	for i := 0; i < 4; i++ {
		if u[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, u[i], want[i])
		}
	}
}

func TestGenerator_HardwarePath(t *testing.T) {
	hw := DetectHardware()
	if !hw.RDRAND && !hw.RDSEED {
		t.Skip("no hardware entropy on this CPU")
	}

	gen, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const draws = 64
	for i := 0; i < draws; i++ {
		if u := gen.Next(); !u.Valid() {
			t.Fatalf("draw %d: %s not a valid v4 UUID", i, u)
		}
	}

	stats := gen.Stats()
	if stats.Hardware+stats.Software != draws {
		t.Errorf("Hardware+Software = %d, want %d", stats.Hardware+stats.Software, draws)
	}
	if stats.Hardware == 0 {
		t.Errorf("Stats().Hardware = 0 with hardware present (misses: %d)", stats.HardwareMisses)
	}
}

// TestGenerator_SeedFallbackPath masks RDRAND off so every hardware fill
// is served by RDSEED. RDSEED can run dry between draws; landing on the
// software engine is allowed but must be accounted as a miss.
func TestGenerator_SeedFallbackPath(t *testing.T) {
	hw := DetectHardware()
	if !hw.RDSEED {
		t.Skip("RDSEED not available on this CPU")
	}

	gen := Must(New(
		WithSeed(42),
		WithHardwareSupport(HardwareSupport{RDSEED: true, AES: hw.AES}),
	))

	const draws = 32
	for i := 0; i < draws; i++ {
		if u := gen.Next(); !u.Valid() {
			t.Fatalf("draw %d: %s not a valid v4 UUID", i, u)
		}
	}

	stats := gen.Stats()
	if stats.Hardware+stats.Software != draws {
		t.Errorf("Hardware+Software = %d, want %d", stats.Hardware+stats.Software, draws)
	}
	if stats.SeedFallbacks != stats.Hardware {
		t.Errorf("Stats().SeedFallbacks = %d, want %d with RDRAND masked off", stats.SeedFallbacks, stats.Hardware)
	}
	if stats.HardwareMisses != stats.Software {
		t.Errorf("Stats().HardwareMisses = %d, want %d", stats.HardwareMisses, stats.Software)
	}
	if stats.Hardware == 0 {
		t.Errorf("Stats().Hardware = 0 with RDSEED present (misses: %d)", stats.HardwareMisses)
	}
}

// TestGenerator_ClaimedHardwareStaysValid forces the feature flags on. On
// machines without the instructions the draws must still come out as valid
// v4 UUIDs through the software path.
func TestGenerator_ClaimedHardwareStaysValid(t *testing.T) {
	metrics := newRecordedMetrics()
	logger := &recordedLogger{}

	gen := Must(New(
		WithSeed(42),
		WithHardwareSupport(HardwareSupport{RDRAND: true, RDSEED: true, AES: true}),
		WithLogger(logger),
		WithMetrics(metrics),
	))

	const draws = 32
	for i := 0; i < draws; i++ {
		if u := gen.Next(); !u.Valid() {
			t.Fatalf("draw %d: %s not a valid v4 UUID", i, u)
		}
	}

	stats := gen.Stats()
	if stats.Hardware+stats.Software != draws {
		t.Errorf("Hardware+Software = %d, want %d", stats.Hardware+stats.Software, draws)
	}

	if real := DetectHardware(); !real.RDRAND && !real.RDSEED {
		// Claimed support with no instructions: every fill misses and
		// lands on the engine, with one warning total.
		if stats.Software != draws {
			t.Errorf("Stats().Software = %d, want %d", stats.Software, draws)
		}
		if stats.HardwareMisses != draws {
			t.Errorf("Stats().HardwareMisses = %d, want %d", stats.HardwareMisses, draws)
		}
		if logger.warns != 1 {
			t.Errorf("Warn() called %d times, want 1", logger.warns)
		}
		if got := metrics.counters["uuidv4.hardware.miss"]; got != draws {
			t.Errorf("uuidv4.hardware.miss = %d, want %d", got, draws)
		}
	}
}

func TestGenerator_MetricsCounters(t *testing.T) {
	metrics := newRecordedMetrics()
	gen := Must(New(WithSeed(5), WithSoftwareOnly(), WithMetrics(metrics)))

	const draws = 10
	for i := 0; i < draws; i++ {
		gen.Next()
	}

	if got := metrics.counters["uuidv4.generate.software"]; got != draws {
		t.Errorf("uuidv4.generate.software = %d, want %d", got, draws)
	}
	if got := metrics.counters["uuidv4.generate.hardware"]; got != 0 {
		t.Errorf("uuidv4.generate.hardware = %d, want 0", got)
	}
}

func TestGenerator_ConstructionLogsDebug(t *testing.T) {
	logger := &recordedLogger{}
	Must(New(WithSeed(1), WithSoftwareOnly(), WithLogger(logger)))

	if logger.debugs != 1 {
		t.Errorf("Debug() called %d times at construction, want 1", logger.debugs)
	}
}

func TestGenerator_StatsSnapshot(t *testing.T) {
	gen := Must(New(WithSeed(9), WithSoftwareOnly()))

	before := gen.Stats()
	gen.Next()
	after := gen.Stats()

	if before.Software != 0 {
		t.Errorf("snapshot before draws: Software = %d, want 0", before.Software)
	}
	if after.Software != 1 {
		t.Errorf("snapshot after one draw: Software = %d, want 1", after.Software)
	}
}

func TestGenerator_Hardware(t *testing.T) {
	want := HardwareSupport{RDRAND: true}
	gen := Must(New(WithSeed(1), WithHardwareSupport(want)))

	if got := gen.Hardware(); got != want {
		t.Errorf("Hardware() = %+v, want %+v", got, want)
	}
}

func TestMust(t *testing.T) {
	gen := Must(New(WithSeed(1), WithSoftwareOnly()))
	if gen == nil {
		t.Fatal("Must() returned nil generator without error")
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(NewGenerator[uint64](nil))
}
