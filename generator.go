package uuidv4

import "encoding/binary"

// Stats is a snapshot of generation counters. Counters are plain integers
// read under the Generator's single-owner contract; callers sharing a
// Generator across goroutines must serialize Stats alongside Next.
type Stats struct {
	// Hardware counts UUIDs filled by RDRAND or RDSEED.
	Hardware uint64

	// Software counts UUIDs filled by the pseudo-random engine.
	Software uint64

	// SeedFallbacks counts hardware fills where RDRAND came back empty
	// and RDSEED supplied the bytes.
	SeedFallbacks uint64

	// HardwareMisses counts fills where both instructions came back
	// empty and the software engine took over.
	HardwareMisses uint64
}

// Generator produces version-4 UUIDs. The zero value is not usable; build
// one with New or NewGenerator.
//
// Each call to Next tries the hardware path first (when the CPU supports
// it) and falls back to the engine, so Next never fails and never blocks
// on entropy. On the software path the engine advances by exactly the
// draws needed to fill 16 bytes; the hardware path never touches the
// engine.
//
// A Generator is not safe for unsynchronized concurrent use.
type Generator[W Word] struct {
	engine   Engine[W]
	width    int
	hw       HardwareSupport
	preferHW bool

	logger  StructuredLogger
	metrics Metrics

	stats      Stats
	missWarned bool
}

// New builds a Generator backed by the default ChaCha8 engine. Without
// WithSeed the engine is keyed from the operating system entropy source,
// which is the only step that can fail.
func New(opts ...Option) (*Generator[uint64], error) {
	cfg := newConfig(opts)

	var engine *ChaCha8
	if cfg.Seed != nil {
		engine = NewChaCha8(*cfg.Seed)
	} else {
		var err error
		engine, err = NewCryptoChaCha8()
		if err != nil {
			return nil, err
		}
	}
	// The seed is consumed here; newGenerator must not see it again.
	cfg.Seed = nil

	return newGenerator[uint64](engine, cfg)
}

// NewGenerator builds a Generator around a caller-supplied engine. The
// engine contract is validated once, at construction. WithSeed is rejected
// here: seed the engine yourself before handing it over.
func NewGenerator[W Word](engine Engine[W], opts ...Option) (*Generator[W], error) {
	cfg := newConfig(opts)
	if cfg.Seed != nil {
		return nil, ErrSeedWithEngine
	}
	return newGenerator(engine, cfg)
}

// Must panics if err is non-nil, otherwise returns g. For package-scope
// initialization:
//
//	var gen = uuidv4.Must(uuidv4.New(uuidv4.WithSoftwareOnly()))
func Must[W Word](g *Generator[W], err error) *Generator[W] {
	if err != nil {
		panic(err)
	}
	return g
}

func newGenerator[W Word](engine Engine[W], cfg *Config) (*Generator[W], error) {
	if err := validateEngine(engine); err != nil {
		return nil, err
	}

	hw := cfg.hardware()
	g := &Generator[W]{
		engine:   engine,
		width:    wordBytes[W](),
		hw:       hw,
		preferHW: hw.randomAvailable(),
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}

	g.logger.Debug("uuid generator ready",
		"hardware", g.preferHW,
		"rdrand", hw.RDRAND,
		"rdseed", hw.RDSEED,
		"aes", hw.AES,
		"engine_width_bytes", g.width,
	)
	return g, nil
}

// Next returns a fresh version-4 UUID. It cannot fail: hardware
// exhaustion falls through to the software engine within the same call.
func (g *Generator[W]) Next() UUID {
	var u UUID
	g.fill(&u)

	// Stamp version 4 and the RFC 4122 variant. Always last, on both
	// paths, so the layout bits survive whitening.
	u[6] = (u[6] & 0x0F) | 0x40
	u[8] = (u[8] & 0x3F) | 0x80
	return u
}

func (g *Generator[W]) fill(u *UUID) {
	if g.preferHW {
		usedSeed, ok := fillHardware(u, g.hw)
		if ok {
			g.stats.Hardware++
			if usedSeed {
				g.stats.SeedFallbacks++
			}
			g.count("uuidv4.generate.hardware", 1)
			return
		}

		g.stats.HardwareMisses++
		g.count("uuidv4.hardware.miss", 1)
		if !g.missWarned {
			g.missWarned = true
			g.logger.Warn("hardware entropy produced no output, using software engine",
				"rdrand", g.hw.RDRAND,
				"rdseed", g.hw.RDSEED,
			)
		}
	}

	g.fillSoftware(u)
	g.stats.Software++
	g.count("uuidv4.generate.software", 1)
}

// fillSoftware packs engine words into u in native byte order. 64-bit
// engines take the two-draw fast path; narrower widths loop, with the
// final word truncated to the space left.
func (g *Generator[W]) fillSoftware(u *UUID) {
	if g.width == 8 {
		binary.NativeEndian.PutUint64(u[0:8], uint64(g.engine.Next()))
		binary.NativeEndian.PutUint64(u[8:16], uint64(g.engine.Next()))
		return
	}
	for off := 0; off < Size; {
		off += putWord(u[off:], g.engine.Next())
	}
}

func (g *Generator[W]) count(name string, value int64) {
	if g.metrics != nil {
		g.metrics.IncrementCounter(name, value)
	}
}

// Stats returns a snapshot of the generation counters.
func (g *Generator[W]) Stats() Stats {
	return g.stats
}

// Hardware returns the feature flags this Generator was built with.
func (g *Generator[W]) Hardware() HardwareSupport {
	return g.hw
}
