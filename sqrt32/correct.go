package sqrt32

import "math"

// Correct nudges est by at most one ULP toward the value whose square
// is closest to x. The residual x - est² is evaluated in float64 with
// the promotion done before squaring; squaring in float32 first would
// round away exactly the error being measured. The sign of the residual
// picks the bit-adjacent candidate (pattern-1 when the estimate is too
// large, pattern+1 otherwise), and the candidate replaces the estimate
// only if its residual is strictly smaller in magnitude.
//
// When the residual is exactly zero the upper neighbor is probed; its
// residual is then strictly worse, so an exact estimate is returned
// unchanged. Applying Correct twice returns the same value as applying
// it once.
//
// Correct assumes est is a positive finite value away from the extremes
// of the range, which holds for any refined guess over the accuracy
// domain. It costs two float64 multiplies and a compare on top of a
// hardware square root's price; the pipeline only spends that when a
// guaranteed 1-ULP bound matters more than speed.
func Correct(est, x float32) float32 {
	xw := float64(x)
	ew := float64(est)
	diff := xw - ew*ew

	bits := math.Float32bits(est)
	if diff < 0 {
		bits-- // estimate too large, probe one step down
	} else {
		bits++
	}

	cand := math.Float32frombits(bits)
	cw := float64(cand)
	diff2 := xw - cw*cw

	if math.Abs(diff2) < math.Abs(diff) {
		return cand
	}

	return est
}
