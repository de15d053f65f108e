package sqrt32

import "errors"

var errMismatchedLength = errors.New("dst and src must have same length")

// Sqrt approximates the square root of x: initial guess, the configured
// number of Newton-Raphson steps, then the optional 1-ULP correction.
// Pure and deterministic for a given configuration and rounding mode.
//
// Accuracy guarantees require x finite and non-negative; see the
// package comment for behavior outside that domain.
func Sqrt(x float32, opts ...Option) float32 {
	return ApplyOptions(opts...).Apply(x)
}

// Apply runs the pipeline on x with the receiver configuration. Use it
// instead of [Sqrt] in hot loops to resolve options once.
func (cfg Config) Apply(x float32) float32 {
	est := InitialGuess(x, cfg.Bias)
	est = Refine(est, x, cfg.Iterations)
	if cfg.Correct {
		est = Correct(est, x)
	}

	return est
}

// SqrtBlock applies the pipeline elementwise: dst[i] = Sqrt(src[i]).
// dst and src must have the same length; they may be the same slice.
// Invocations over distinct elements are independent, so callers may
// split the block across goroutines freely.
func SqrtBlock(dst, src []float32, opts ...Option) error {
	if len(dst) != len(src) {
		return errMismatchedLength
	}

	cfg := ApplyOptions(opts...)
	for i, x := range src {
		dst[i] = cfg.Apply(x)
	}

	return nil
}
