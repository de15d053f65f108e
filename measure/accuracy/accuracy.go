package accuracy

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sqrt/sqrt32"
)

// Report summarizes approximation error over the swept inputs.
type Report struct {
	Inputs   int     // values examined
	Checksum float64 // sum of all pipeline outputs

	// Normalized inputs.
	MaxRelErr   float64 // max |result - sqrt(x)| / sqrt(x)
	MaxRelErrAt float32

	// Denormal and zero inputs.
	MaxAbsErr     float64 // max |result - sqrt(x)|
	MaxAbsErrAt   float32
	MaxResidual   float64 // max |x - result²|, evaluated in float64
	MaxResidualAt float32
}

// StreamingSweep accumulates error statistics incrementally across
// blocks of inputs. Results are bit-for-bit identical to [Sweep] over
// the same inputs in the same order.
type StreamingSweep struct {
	cfg Config

	n        int
	checksum float64

	maxRel   float64
	maxRelAt float32

	maxAbs   float64
	maxAbsAt float32

	maxResidual   float64
	maxResidualAt float32

	// Scratch blocks, sized to cfg.BlockSize on first use.
	est, xw, sq, res []float64
}

// NewStreamingSweep creates an accumulator for the given sweep options.
// The range and stride fields are ignored; the caller chooses the
// inputs it feeds to Update.
func NewStreamingSweep(opts ...Option) *StreamingSweep {
	return &StreamingSweep{cfg: ApplyOptions(opts...)}
}

// Update runs the pipeline on every input and folds the errors into the
// running statistics. Inputs are processed in blocks of the configured
// size.
func (s *StreamingSweep) Update(inputs []float32) {
	for len(inputs) > 0 {
		n := len(inputs)
		if n > s.cfg.BlockSize {
			n = s.cfg.BlockSize
		}
		s.updateBlock(inputs[:n])
		inputs = inputs[n:]
	}
}

func (s *StreamingSweep) updateBlock(inputs []float32) {
	n := len(inputs)
	s.ensureScratch()

	est, xw := s.est[:n], s.xw[:n]
	for i, x := range inputs {
		est[i] = float64(s.cfg.Sqrt.Apply(x))
		xw[i] = float64(x)
	}

	// res = xw - est², all in float64.
	sq, res := s.sq[:n], s.res[:n]
	vecmath.MulBlock(sq, est, est)
	vecmath.ScaleBlock(res, sq, -1)
	vecmath.AddBlockInPlace(res, xw)

	for i, x := range inputs {
		s.n++
		s.checksum += est[i]

		ref := math.Sqrt(xw[i])
		if sqrt32.IsNormalized(x) {
			rel := math.Abs(est[i]-ref) / ref
			if rel > s.maxRel {
				s.maxRel = rel
				s.maxRelAt = x
			}

			continue
		}

		// Denormals and zero: relative error is meaningless here, track
		// the absolute distance and the squared-domain residual.
		abs := math.Abs(est[i] - ref)
		if abs > s.maxAbs {
			s.maxAbs = abs
			s.maxAbsAt = x
		}
		if r := math.Abs(res[i]); r > s.maxResidual {
			s.maxResidual = r
			s.maxResidualAt = x
		}
	}
}

func (s *StreamingSweep) ensureScratch() {
	if len(s.est) == s.cfg.BlockSize {
		return
	}
	s.est = make([]float64, s.cfg.BlockSize)
	s.xw = make([]float64, s.cfg.BlockSize)
	s.sq = make([]float64, s.cfg.BlockSize)
	s.res = make([]float64, s.cfg.BlockSize)
}

// Result returns the statistics accumulated so far.
func (s *StreamingSweep) Result() Report {
	return Report{
		Inputs:        s.n,
		Checksum:      s.checksum,
		MaxRelErr:     s.maxRel,
		MaxRelErrAt:   s.maxRelAt,
		MaxAbsErr:     s.maxAbs,
		MaxAbsErrAt:   s.maxAbsAt,
		MaxResidual:   s.maxResidual,
		MaxResidualAt: s.maxResidualAt,
	}
}

// Reset clears the accumulated statistics, keeping the configuration
// and scratch blocks.
func (s *StreamingSweep) Reset() {
	cfg, est, xw, sq, res := s.cfg, s.est, s.xw, s.sq, s.res
	*s = StreamingSweep{cfg: cfg, est: est, xw: xw, sq: sq, res: res}
}

// Sweep enumerates the configured bit-pattern range and returns the
// aggregated error report. Deterministic: the pipeline is pure, so the
// same options always produce the same report.
func Sweep(opts ...Option) Report {
	cfg := ApplyOptions(opts...)
	s := &StreamingSweep{cfg: cfg}

	buf := make([]float32, 0, cfg.BlockSize)
	for p := uint64(cfg.First); p <= uint64(cfg.Last); p += uint64(cfg.Stride) {
		buf = append(buf, math.Float32frombits(uint32(p)))
		if len(buf) == cfg.BlockSize {
			s.Update(buf)
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		s.Update(buf)
	}

	return s.Result()
}
