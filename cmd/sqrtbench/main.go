// Command sqrtbench times and validates the approximate square-root
// pipeline over the positive float32 range.
//
// Usage:
//
//	sqrtbench [flags]
//
// Without flags it sweeps every normalized positive bit pattern,
// reports wall-clock timing against the hardware square root and the
// algo-approx fast square root, then prints the accuracy report for
// normalized and denormal inputs.
//
// Examples:
//
//	sqrtbench -quick
//	sqrtbench -iters 1 -correct=false
//	sqrtbench -canonical -stride 16
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-approx"

	"github.com/cwbudde/algo-sqrt/measure/accuracy"
	"github.com/cwbudde/algo-sqrt/sqrt32"
)

func main() {
	iters := flag.Int("iters", 3, "Newton-Raphson refinement steps [0..4]")
	correct := flag.Bool("correct", true, "apply the final 1-ULP residual correction")
	canonical := flag.Bool("canonical", false, "use the canonical guess constant instead of the tuned one")
	bias := flag.Uint("bias", 0, "explicit guess bias constant, overrides -canonical (any value, including 0)")
	first := flag.Uint("first", uint(sqrt32.MinNormalBits), "first bit pattern of the timing sweep (inclusive)")
	last := flag.Uint("last", uint(sqrt32.MaxFiniteBits), "last bit pattern of the timing sweep (inclusive)")
	stride := flag.Uint("stride", 1, "bit-pattern stride")
	block := flag.Int("block", 4096, "block size for the accuracy sweep")
	quick := flag.Bool("quick", false, "sparse sweep (stride 4099) for a fast sanity run")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sqrtbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times and validates the approximate float32 square root.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *first > *last || uint64(*last) > math.MaxUint32 || *stride == 0 || uint64(*stride) > math.MaxUint32 {
		fmt.Fprintf(os.Stderr, "error: invalid sweep range or stride\n")
		os.Exit(1)
	}
	if *quick {
		*stride = 4099
	}
	if uint64(*bias) > math.MaxUint32 {
		fmt.Fprintf(os.Stderr, "error: bias constant out of range\n")
		os.Exit(1)
	}

	// A zero bias is a legal constant, so flag presence decides whether
	// -bias applies, not its value.
	biasSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "bias" {
			biasSet = true
		}
	})

	opts := pipelineOptions(*iters, *correct, *canonical, biasSet, uint32(*bias))
	cfg := sqrt32.ApplyOptions(opts...)

	printTiming(cfg, uint32(*first), uint32(*last), uint32(*stride))
	printAccuracy(opts, uint32(*stride), *block)
}

// pipelineOptions maps the parsed flags onto pipeline options. An
// explicitly set -bias wins over -canonical.
func pipelineOptions(iters int, correct, canonical, biasSet bool, bias uint32) []sqrt32.Option {
	opts := []sqrt32.Option{
		sqrt32.WithIterations(iters),
		sqrt32.WithCorrection(correct),
	}
	if canonical {
		opts = append(opts, sqrt32.WithCanonicalBias())
	}
	if biasSet {
		opts = append(opts, sqrt32.WithBias(bias))
	}

	return opts
}

// timingRun sweeps the bit-pattern range once and reports the element
// count, elapsed wall-clock time, and the output sum. The sum is
// printed so the compiler cannot discard the computation.
func timingRun(first, last, stride uint32, f func(float32) float64) (n int, elapsed time.Duration, sum float64) {
	start := time.Now()
	for p := uint64(first); p <= uint64(last); p += uint64(stride) {
		sum += f(math.Float32frombits(uint32(p)))
		n++
	}

	return n, time.Since(start), sum
}

func printTiming(cfg sqrt32.Config, first, last, stride uint32) {
	runs := []struct {
		name string
		f    func(float32) float64
	}{
		{"pipeline", func(x float32) float64 { return float64(cfg.Apply(x)) }},
		{"hardware sqrt", func(x float32) float64 { return float64(float32(math.Sqrt(float64(x)))) }},
		{"approx.FastSqrt", func(x float32) float64 { return approx.FastSqrt(float64(x)) }},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Implementation\tInputs\tTotal\tns/op\tChecksum\n")
	for _, r := range runs {
		n, elapsed, sum := timingRun(first, last, stride, r.f)
		fmt.Fprintf(tw, "%s\t%d\t%v\t%.2f\t%g\n",
			r.name, n, elapsed.Round(time.Millisecond), float64(elapsed.Nanoseconds())/float64(n), sum)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

func printAccuracy(opts []sqrt32.Option, stride uint32, block int) {
	normalized := accuracy.Sweep(
		accuracy.WithRange(sqrt32.MinNormalBits, sqrt32.MaxFiniteBits),
		accuracy.WithStride(stride),
		accuracy.WithBlockSize(block),
		accuracy.WithSqrtOptions(opts...),
	)
	tiny := accuracy.Sweep(
		accuracy.WithRange(0, sqrt32.MinNormalBits-1),
		accuracy.WithStride(stride),
		accuracy.WithBlockSize(block),
		accuracy.WithSqrtOptions(opts...),
	)

	fmt.Printf("\nnormalized: %d inputs, max relative error %.3g at %g\n",
		normalized.Inputs, normalized.MaxRelErr, normalized.MaxRelErrAt)
	fmt.Printf("denormal/zero: %d inputs, max absolute error %.3g at %g, max residual %.3g at %g\n",
		tiny.Inputs, tiny.MaxAbsErr, tiny.MaxAbsErrAt, tiny.MaxResidual, tiny.MaxResidualAt)
}
