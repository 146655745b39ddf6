package uuidv4

// Option is a function that modifies a Config.
type Option func(*Config)

// WithSeed keys the built-in software engine with a fixed seed, making the
// software path fully deterministic. Combine with WithSoftwareOnly for
// reproducible output; with hardware enabled the hardware path still wins
// whenever it produces entropy.
//
// WithSeed only configures the built-in engine: passing it to NewGenerator
// alongside a custom engine is a construction error.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = &seed
	}
}

// WithHardwareSupport overrides CPU feature detection. Intended for tests
// that exercise the fallback ladder on machines where the instructions
// exist, and for forcing hardware off in reproducibility-sensitive setups.
func WithHardwareSupport(h HardwareSupport) Option {
	return func(c *Config) {
		c.Hardware = &h
	}
}

// WithSoftwareOnly disables the hardware path entirely. Shorthand for
// WithHardwareSupport(HardwareSupport{}).
func WithSoftwareOnly() Option {
	return func(c *Config) {
		c.Hardware = &HardwareSupport{}
	}
}

// WithLogger sets a structured logger for generator diagnostics.
//
// Example with slog:
//
//	gen, _ := uuidv4.New(
//	    uuidv4.WithLogger(uuidv4.NewSlogAdapter(slog.Default())),
//	)
func WithLogger(logger StructuredLogger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics sets a metrics collector.
func WithMetrics(metrics Metrics) Option {
	return func(c *Config) {
		c.Metrics = metrics
	}
}
