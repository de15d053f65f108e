// Package sqrt32 approximates single-precision square roots without a
// hardware square-root instruction.
//
// The pipeline has three stages:
//
//   - Initial guess: the input's bit pattern is shifted right by one and
//     offset by a bias constant, halving the IEEE-754 exponent directly
//     ([InitialGuess]).
//   - Refinement: zero to four Newton-Raphson steps polish the guess
//     ([Refine]).
//   - Correction: a final step evaluates the residual x - est² in
//     float64 and nudges the estimate to a bit-adjacent neighbor when
//     that shrinks the residual ([Correct]).
//
// The composed pipeline is exposed as [Sqrt] with functional options and
// as [SqrtBlock] for slices. Every stage is a pure function of its
// inputs; batch application over distinct inputs needs no
// synchronization.
//
// # Accuracy
//
// With the default configuration (three refinement steps, correction
// on, [TunedBias]) the result is within 1 ULP of the correctly rounded
// square root for every normalized positive input, a relative error of
// at most 1.2e-7 under round-to-nearest.
//
// The corrector moves the estimate by at most one ULP, so the bound
// above holds only once refinement lands that close. The raw guess
// stays within about 7% (canonical bias) or 3.6% (tuned bias) on the
// normalized domain; two Newton steps shrink 3.6% to roughly 3e-7,
// which near the guess's error peaks is still two to three ULP, and
// the corrected result can end up 2 ULP from the correctly rounded
// root (relative error up to about 3e-7). The third default step is
// what brings the whole range inside the corrector's reach; use
// WithIterations(2) where that residual error is acceptable and the
// extra division is not.
//
// For denormal inputs the relative error is unbounded, but the squared
// residual |x - result²| stays below ~6.6e-39 for the raw guess and
// below ~3e-40 after four refinement steps.
//
// # Domain
//
// Accuracy guarantees cover finite non-negative inputs only. Negative,
// NaN, and infinite inputs still flow through the bit transform and
// produce a value (typically NaN, as the sign bit shifts into the
// exponent field), but the value is unspecified; nothing panics or
// loops. A zero estimate entering [Refine] divides by zero; that cannot
// arise from [InitialGuess], whose bias constant keeps the guess
// strictly positive for every non-negative input including +0.
package sqrt32
