package sqrt32

// Config defines the approximation pipeline settings.
type Config struct {
	Iterations int    // Newton-Raphson refinement steps, [0, MaxIterations]
	Correct    bool   // final 1-ULP residual correction
	Bias       uint32 // initial-guess bias constant
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration whose accuracy is documented
// in the package comment: three refinement steps, correction enabled,
// tuned bias. Three steps is the smallest count that leaves the
// estimate within the corrector's one-ULP reach on the whole
// normalized range; two steps trade the guaranteed bound for speed
// (see the package comment).
func DefaultConfig() Config {
	return Config{
		Iterations: 3,
		Correct:    true,
		Bias:       TunedBias,
	}
}

// WithIterations sets the number of refinement steps, clamped to
// [0, MaxIterations].
func WithIterations(steps int) Option {
	return func(cfg *Config) {
		if steps < 0 {
			steps = 0
		}
		if steps > MaxIterations {
			steps = MaxIterations
		}
		cfg.Iterations = steps
	}
}

// WithCorrection enables or disables the final residual correction.
func WithCorrection(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Correct = enabled
	}
}

// WithBias sets the initial-guess bias constant.
func WithBias(bias uint32) Option {
	return func(cfg *Config) {
		cfg.Bias = bias
	}
}

// WithCanonicalBias selects the analytically derived guess constant
// instead of the tuned default.
func WithCanonicalBias() Option {
	return WithBias(CanonicalBias)
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
