// Package accuracy measures the approximation error of the sqrt32
// pipeline against the correctly rounded square root.
//
// A sweep enumerates float32 bit patterns over an inclusive range,
// runs the configured pipeline on each, and aggregates:
//
//   - the maximum relative error over normalized inputs,
//   - the maximum absolute error over denormal and zero inputs,
//   - the maximum squared-domain residual |x - result²| over denormal
//     and zero inputs, evaluated in float64,
//
// together with the worst input for each and a checksum of all outputs
// (which keeps an optimizing toolchain from discarding the work during
// timing runs).
//
// # Usage
//
//	rep := accuracy.Sweep(
//		accuracy.WithRange(sqrt32.MinNormalBits, sqrt32.MaxFiniteBits),
//		accuracy.WithStride(1),
//	)
//	fmt.Printf("max relative error %.3g at %g\n", rep.MaxRelErr, rep.MaxRelErrAt)
//
// [StreamingSweep] offers the same aggregation incrementally across
// caller-supplied blocks and produces bit-for-bit identical results to
// [Sweep] over the same inputs.
package accuracy
