package sqrt32

import "math"

// Bias constants for [InitialGuess].
//
// Halving a float's bit pattern halves its biased exponent, which is
// almost the exponent of its square root; the bias constant restores
// the half of the IEEE-754 exponent offset lost in the shift.
const (
	// CanonicalBias is derived analytically from the exponent identity:
	// (1<<29) - (1<<22). Maximum relative error on normalized inputs is
	// about 0.061, reached just below even powers of two.
	CanonicalBias uint32 = 1<<29 - 1<<22

	// TunedBias was found by exhaustive search to minimize the maximum
	// relative error over all normalized inputs (canonical - 313747).
	// Shifting the guess slightly low balances the error band around
	// zero and roughly halves the worst case.
	TunedBias uint32 = CanonicalBias - 313747
)

// InitialGuess estimates sqrt(x) from the bit pattern of x alone: shift
// the pattern right by one and add bias (one of [CanonicalBias] or
// [TunedBias]). Branch-free, four integer-ish operations.
//
// The estimate is meaningful for finite non-negative x; other inputs
// still yield a pattern but no accuracy guarantee. The result is
// strictly positive for every non-negative input, including +0, so it
// is always a safe seed for [Refine].
func InitialGuess(x float32, bias uint32) float32 {
	return math.Float32frombits(math.Float32bits(x)>>1 + bias)
}
