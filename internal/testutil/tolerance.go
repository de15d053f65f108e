// Package testutil provides float32 comparison helpers shared by the
// package tests.
package testutil

import (
	"math"
	"testing"
)

// ULPDiff32 returns the number of representable float32 values between
// a and b. Both must be finite and of the same sign; NaN yields the
// maximum distance.
func ULPDiff32(a, b float32) uint32 {
	if a != a || b != b {
		return math.MaxUint32
	}

	ba, bb := math.Float32bits(a), math.Float32bits(b)
	if ba>>31 != bb>>31 {
		return math.MaxUint32
	}
	if ba > bb {
		return ba - bb
	}

	return bb - ba
}

// RequireWithinULP32 fails t if got and want are more than ulps
// representable values apart.
func RequireWithinULP32(t *testing.T, got, want float32, ulps uint32) {
	t.Helper()
	if d := ULPDiff32(got, want); d > ulps {
		t.Fatalf("got %v (%#08x), want %v (%#08x): %d ULP apart (max %d)",
			got, math.Float32bits(got), want, math.Float32bits(want), d, ulps)
	}
}

// RequireRelClose fails t if |got - want| / |want| exceeds maxRel.
// A zero want falls back to an absolute comparison against maxRel.
func RequireRelClose(t *testing.T, got, want, maxRel float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if want == 0 {
		if diff > maxRel {
			t.Fatalf("got %v, want 0 (diff %v > %v)", got, diff, maxRel)
		}

		return
	}
	if rel := diff / math.Abs(want); rel > maxRel {
		t.Fatalf("got %v, want %v (relative error %v > %v)", got, want, rel, maxRel)
	}
}

// RequireFinite32 fails t if v is NaN or infinite.
func RequireFinite32(t *testing.T, v float32) {
	t.Helper()
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		t.Fatalf("non-finite value %v", v)
	}
}
