package uuidv4

// Config holds the configuration assembled from functional options. Most
// callers never touch it directly; New and NewGenerator build one from the
// supplied options.
type Config struct {
	// Seed, when set, keys the built-in software engine deterministically.
	// Incompatible with a caller-supplied engine.
	Seed *uint64

	// Hardware overrides CPU feature detection. Nil means detect.
	Hardware *HardwareSupport

	// Logger receives generator lifecycle and fallback messages.
	// Nil disables logging.
	Logger StructuredLogger

	// Metrics receives generation counters. Nil disables metrics.
	Metrics Metrics
}

// newConfig applies options over an empty configuration.
func newConfig(opts []Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	return cfg
}

// hardware resolves the effective feature flags: the injected override if
// present, otherwise the detected CPU features.
func (c *Config) hardware() HardwareSupport {
	if c.Hardware != nil {
		return *c.Hardware
	}
	return DetectHardware()
}
