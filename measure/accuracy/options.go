package accuracy

import "github.com/cwbudde/algo-sqrt/sqrt32"

// Config defines a sweep: the inclusive bit-pattern range to enumerate,
// the enumeration stride, the block size for batched residual math, and
// the pipeline configuration under test.
type Config struct {
	First     uint32
	Last      uint32
	Stride    uint32
	BlockSize int
	Sqrt      sqrt32.Config
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig covers every positive finite float32 at stride 1 with
// the default pipeline.
func DefaultConfig() Config {
	return Config{
		First:     1,
		Last:      sqrt32.MaxFiniteBits,
		Stride:    1,
		BlockSize: 4096,
		Sqrt:      sqrt32.DefaultConfig(),
	}
}

// WithRange sets the inclusive bit-pattern range [first, last].
func WithRange(first, last uint32) Option {
	return func(cfg *Config) {
		if first <= last {
			cfg.First, cfg.Last = first, last
		}
	}
}

// WithStride sets the enumeration stride.
func WithStride(stride uint32) Option {
	return func(cfg *Config) {
		if stride > 0 {
			cfg.Stride = stride
		}
	}
}

// WithBlockSize sets the batch size used for residual evaluation.
func WithBlockSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.BlockSize = size
		}
	}
}

// WithSqrtOptions configures the pipeline under test.
func WithSqrtOptions(opts ...sqrt32.Option) Option {
	return func(cfg *Config) {
		cfg.Sqrt = sqrt32.ApplyOptions(opts...)
	}
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
