package sqrt32

import (
	"math"
	"testing"
)

func TestInitialGuessExactPowers(t *testing.T) {
	// The canonical bias maps even powers of two exactly.
	tests := []struct {
		x, want float32
	}{
		{x: 0.25, want: 0.5},
		{x: 1, want: 1},
		{x: 4, want: 2},
		{x: 16, want: 4},
		{x: 64, want: 8},
	}

	for _, tt := range tests {
		if got := InitialGuess(tt.x, CanonicalBias); got != tt.want {
			t.Fatalf("InitialGuess(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestInitialGuessRelativeError(t *testing.T) {
	const stride = 65521

	var maxCanonical, maxTuned float64
	for p := uint64(MinNormalBits); p <= uint64(MaxFiniteBits); p += stride {
		x := math.Float32frombits(uint32(p))
		ref := math.Sqrt(float64(x))

		if rel := math.Abs(float64(InitialGuess(x, CanonicalBias))-ref) / ref; rel > maxCanonical {
			maxCanonical = rel
		}
		if rel := math.Abs(float64(InitialGuess(x, TunedBias))-ref) / ref; rel > maxTuned {
			maxTuned = rel
		}
	}

	if maxCanonical > 0.07 {
		t.Fatalf("canonical bias: max relative error %v exceeds 0.07", maxCanonical)
	}
	if maxTuned > 0.05 {
		t.Fatalf("tuned bias: max relative error %v exceeds 0.05", maxTuned)
	}
	if maxTuned >= maxCanonical {
		t.Fatalf("tuned bias (%v) should beat canonical (%v)", maxTuned, maxCanonical)
	}
}

func TestInitialGuessDenormalResidual(t *testing.T) {
	// For denormals the relative error is unbounded, but the squared
	// residual |x - guess²| stays small; the worst case is the smallest
	// denormal, where the guess is dominated by the bias constant.
	check := func(p uint32) {
		t.Helper()
		x := math.Float32frombits(p)
		g := float64(InitialGuess(x, CanonicalBias))
		if res := math.Abs(float64(x) - g*g); res > 7e-39 {
			t.Fatalf("pattern %#08x: residual %v exceeds 7e-39", p, res)
		}
	}

	check(1)
	check(MinNormalBits - 1)
	for p := uint32(1); p < MinNormalBits; p += 127 {
		check(p)
	}
}

func TestInitialGuessPositiveSeed(t *testing.T) {
	// Refine divides by the guess, so the guess must never be zero for
	// non-negative inputs. The bias constant guarantees that even for +0.
	for _, bias := range []uint32{CanonicalBias, TunedBias} {
		if g := InitialGuess(0, bias); !(g > 0) {
			t.Fatalf("InitialGuess(0, %d) = %v, want > 0", bias, g)
		}
	}
}
