package accuracy

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sqrt/sqrt32"
)

func TestSweepNormalized(t *testing.T) {
	rep := Sweep(
		WithRange(sqrt32.MinNormalBits, sqrt32.MaxFiniteBits),
		WithStride(65537),
	)

	if rep.Inputs == 0 {
		t.Fatal("sweep examined no inputs")
	}
	if rep.MaxRelErr <= 0 || rep.MaxRelErr > 1.2e-7 {
		t.Fatalf("max relative error %v outside (0, 1.2e-7]", rep.MaxRelErr)
	}
	if !sqrt32.IsNormalized(rep.MaxRelErrAt) {
		t.Fatalf("worst input %v is not normalized", rep.MaxRelErrAt)
	}
	if rep.MaxAbsErr != 0 || rep.MaxResidual != 0 {
		t.Fatalf("normalized sweep populated denormal stats: %+v", rep)
	}
}

func TestSweepNormalizedTwoStep(t *testing.T) {
	// With only two refinement steps the corrected pipeline stays within
	// ~3e-7 but not within the default configuration's 1-ULP bound.
	rep := Sweep(
		WithRange(sqrt32.MinNormalBits, sqrt32.MaxFiniteBits),
		WithStride(65537),
		WithSqrtOptions(sqrt32.WithIterations(2)),
	)

	if rep.MaxRelErr <= 0 || rep.MaxRelErr > 3e-7 {
		t.Fatalf("max relative error %v outside (0, 3e-7]", rep.MaxRelErr)
	}
}

func TestSweepDenormal(t *testing.T) {
	rep := Sweep(
		WithRange(0, sqrt32.MinNormalBits-1),
		WithStride(127),
		WithSqrtOptions(sqrt32.WithIterations(4)),
	)

	if rep.MaxRelErr != 0 {
		t.Fatalf("denormal sweep populated normalized stats: %+v", rep)
	}
	if rep.MaxResidual <= 0 || rep.MaxResidual > 3e-40 {
		t.Fatalf("max residual %v outside (0, 3e-40]", rep.MaxResidual)
	}
	if rep.MaxAbsErr > 1e-20 {
		t.Fatalf("max absolute error %v exceeds 1e-20", rep.MaxAbsErr)
	}
}

func TestSweepDeterministic(t *testing.T) {
	opts := []Option{
		WithRange(sqrt32.MinNormalBits, sqrt32.MinNormalBits+1<<20),
		WithStride(101),
	}

	if a, b := Sweep(opts...), Sweep(opts...); a != b {
		t.Fatalf("identical sweeps disagree:\n%+v\n%+v", a, b)
	}
}

func TestStreamingMatchesSweep(t *testing.T) {
	first, last := sqrt32.MinNormalBits, sqrt32.MinNormalBits+1<<21
	const stride = 257

	want := Sweep(WithRange(first, last), WithStride(stride))

	var inputs []float32
	for p := uint64(first); p <= uint64(last); p += stride {
		inputs = append(inputs, math.Float32frombits(uint32(p)))
	}

	// Feed in chunk sizes unrelated to the block size; results must be
	// bit-for-bit identical.
	s := NewStreamingSweep(WithBlockSize(1000))
	for len(inputs) > 0 {
		n := 997
		if n > len(inputs) {
			n = len(inputs)
		}
		s.Update(inputs[:n])
		inputs = inputs[n:]
	}

	if got := s.Result(); got != want {
		t.Fatalf("streaming result differs:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestStreamingReset(t *testing.T) {
	s := NewStreamingSweep()
	s.Update([]float32{1, 2, 3, 4})
	if s.Result().Inputs != 4 {
		t.Fatalf("Inputs = %d, want 4", s.Result().Inputs)
	}

	s.Reset()
	if got := s.Result(); got != (Report{}) {
		t.Fatalf("Result after Reset = %+v, want zero report", got)
	}
}

func TestChecksumAccumulates(t *testing.T) {
	s := NewStreamingSweep()
	s.Update([]float32{1, 4})

	rep := s.Result()
	if rep.Checksum < 2.9 || rep.Checksum > 3.1 {
		t.Fatalf("checksum %v, want about 3 (sqrt 1 + sqrt 4)", rep.Checksum)
	}
}

func TestOptionGuards(t *testing.T) {
	cfg := ApplyOptions(WithStride(0), WithBlockSize(-1), WithRange(10, 5), nil)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("invalid options mutated config: %+v", cfg)
	}
}
