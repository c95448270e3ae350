package main

import "math"

// Streaming noise filters: produce spectrally shaped, approximately uniform
// samples one at a time, without knowing the sequence length in advance
// (unlike the stratified and regular-offset generators).

// cdfCorrection is a piecewise cubic fit of the inverse CDF of the FIR
// filter output: 4 bins over [0,1), 4 Horner coefficients each. The fit is
// empirical and shared by the red and blue variants; only the kernel and the
// input normalization differ.
var cdfCorrection = [16]float64{
	5.25964, 0.039474, 0.000708779, 0.0,
	-5.20987, 7.82905, -1.93105, 0.159677,
	-5.22644, 7.8272, -1.91677, 0.15507,
	5.23882, -15.761, 15.8054, -4.28323,
}

// uniformize restores an approximately uniform marginal while preserving the
// correlation the filter induced between consecutive outputs.
func uniformize(x float64) float64 {
	bin := int(x * 4)
	if bin > 3 {
		bin = 3
	}
	if bin < 0 {
		bin = 0
	}
	c := cdfCorrection[bin*4 : bin*4+4]
	y := c[3] + x*(c[2]+x*(c[1]+x*c[0]))
	// The empirical fit can overshoot the unit interval by a hair at the
	// bin edges; keep the contract at [0,1).
	if y < 0 {
		return 0
	}
	if y >= 1 {
		return math.Nextafter(1, 0)
	}
	return y
}

// FilteredStream runs raw uniform draws through a 3-tap FIR kernel and then
// the CDF correction. Next is stateful and single-owner: one instance per
// trial, never shared across goroutines.
type FilteredStream struct {
	rng        pcgStream
	c0, c1, c2 float64
	renorm     bool // high-pass output lands in [-1,1] and needs remapping
	p0, p1     float64
}

// NewBlueStream builds a high-pass (blue) filter stream for one
// (seed, sequenceIndex) pair.
func NewBlueStream(seed, sequenceIndex uint64) *FilteredStream {
	f := &FilteredStream{
		rng: newStream(seed, sequenceIndex),
		c0:  0.5, c1: -1.0, c2: 0.5,
		renorm: true,
	}
	f.p0 = f.rng.Float01()
	f.p1 = f.rng.Float01()
	return f
}

// NewRedStream builds a low-pass (red) filter stream; its kernel output is
// already in [0,1].
func NewRedStream(seed, sequenceIndex uint64) *FilteredStream {
	f := &FilteredStream{
		rng: newStream(seed, sequenceIndex),
		c0:  0.25, c1: 0.5, c2: 0.25,
	}
	f.p0 = f.rng.Float01()
	f.p1 = f.rng.Float01()
	return f
}

// Next draws one raw uniform, filters it against the two previous raws, and
// uniformizes the result.
func (f *FilteredStream) Next() float64 {
	v := f.rng.Float01()
	y := v*f.c0 + f.p0*f.c1 + f.p1*f.c2
	f.p1 = f.p0
	f.p0 = v
	x := y
	if f.renorm {
		x = y*0.5 + 0.5
	}
	return uniformize(x)
}

// AppletonStream is an independent blue-noise construction: one random sign
// bit per output, folded against half the previous output. Uniformity is a
// property of the construction itself; no CDF correction is applied.
type AppletonStream struct {
	state uint32
	prev  float64
}

func NewAppletonStream(seed uint32) *AppletonStream {
	return &AppletonStream{state: seed}
}

// randomBit is a minimal nonlinear integer-state generator; only the top bit
// is consumed.
func (a *AppletonStream) randomBit() bool {
	a.state += (a.state * a.state) | 5
	return a.state&0x80000000 != 0
}

// Next produces one sample in [0,1].
func (a *AppletonStream) Next() float64 {
	sign := -1.0
	if a.randomBit() {
		sign = 1.0
	}
	ret := sign/2 - a.prev
	a.prev = ret / 2
	return ret*0.5 + 0.5
}
