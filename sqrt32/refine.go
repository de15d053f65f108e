package sqrt32

// MaxIterations bounds the Newton-Raphson step count accepted by the
// pipeline. Each step roughly squares the number of correct bits while
// doubling the cost: two steps is the cheapest configuration that gets
// within a few ULP, three is the smallest count that puts every
// normalized estimate within the corrector's one-ULP reach.
const MaxIterations = 4

// Refine applies steps Newton-Raphson iterations
//
//	est = 0.5 * (est + x/est)
//
// whose fixed point satisfies est² = x. With steps <= 0 the estimate is
// returned unchanged.
//
// est must be non-zero: a zero estimate divides by zero. This is an
// unchecked precondition rather than a guard to keep the loop
// branch-free; seeds produced by [InitialGuess] from non-negative
// inputs are always strictly positive.
func Refine(est, x float32, steps int) float32 {
	for i := 0; i < steps; i++ {
		est = 0.5 * (est + x/est)
	}

	return est
}
