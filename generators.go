package main

import "math"

// SequenceFunc produces n ordered samples in [0,1) for one sequence index.
// Implementations are pure functions of (n, seqIndex) and the immutable
// process seed, so any trial can be replayed in isolation.
type SequenceFunc func(n int, seqIndex uint64) []float64

// Generator is one named sampling strategy. CandidatesFn, when set, is a
// decorrelated variant used by order-sensitive experiments: an
// always-increasing sequence would trivially reward the last position in the
// best-candidate test.
type Generator struct {
	Name         string
	Fn           SequenceFunc
	CandidatesFn SequenceFunc
}

const goldenRatioConjugate = 0.61803398875

// Sequences builds the generator family for one immutable seed.
type Sequences struct {
	seed uint64
}

// Stream index salt for Fisher-Yates keying; keeps shuffle draws off the
// streams that produced the samples being shuffled.
const shuffleStreamIndex = 0x9e3779b9

func NewSequences(seed uint64) Sequences {
	return Sequences{seed: seed}
}

// White returns n independent uniform draws.
func (s Sequences) White(n int, seqIndex uint64) []float64 {
	rng := newStream(s.seed, seqIndex)
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float01()
	}
	return out
}

// Stratified divides [0,1) into n equal bins and jitters one sample inside
// each. Needs n up front, so it has no streaming form.
func (s Sequences) Stratified(n int, seqIndex uint64) []float64 {
	rng := newStream(s.seed, seqIndex)
	out := make([]float64, n)
	for i := range out {
		out[i] = (float64(i) + rng.Float01()) / float64(n)
	}
	return out
}

// RegularOffset returns evenly spaced samples with a single random phase.
func (s Sequences) RegularOffset(n int, seqIndex uint64) []float64 {
	rng := newStream(s.seed, seqIndex)
	offset := rng.Float01()
	out := make([]float64, n)
	for i := range out {
		out[i] = (float64(i) + offset) / float64(n)
	}
	return out
}

// GoldenRatio starts at a random point and steps by the golden ratio
// conjugate mod 1. Low discrepancy, fully deterministic after the first
// sample.
func (s Sequences) GoldenRatio(n int, seqIndex uint64) []float64 {
	out := make([]float64, n)
	out[0] = s.White(1, seqIndex)[0]
	for i := 1; i < n; i++ {
		out[i] = math.Mod(out[i-1]+goldenRatioConjugate, 1.0)
	}
	return out
}

// BlueNaive differences n+1 white samples. Neighboring differences share a
// sample, which anti-correlates them; the triangular marginal is remapped to
// uniform.
func (s Sequences) BlueNaive(n int, seqIndex uint64) []float64 {
	white := s.White(n+1, seqIndex)
	out := make([]float64, n)
	for i := range out {
		out[i] = triangleToUniform((white[i+1]-white[i])*0.5 + 0.5)
	}
	return out
}

// RedNaive averages adjacent white samples, correlating neighbors, then
// remaps the triangular marginal to uniform.
func (s Sequences) RedNaive(n int, seqIndex uint64) []float64 {
	white := s.White(n+1, seqIndex)
	out := make([]float64, n)
	for i := range out {
		out[i] = triangleToUniform((white[i+1] + white[i]) * 0.5)
	}
	return out
}

// triangleToUniform maps a sample with a triangular PDF on [0,1] (peak at
// 0.5) back to uniform by pushing it through the triangular CDF, one linear
// PDF piece per half of the support.
func triangleToUniform(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}
	d := 1 - x
	return 1 - 2*d*d
}

// shuffle applies a seeded Fisher-Yates permutation keyed by
// seed XOR seqIndex. Same key, same permutation.
func (s Sequences) shuffle(vals []float64, seqIndex uint64) {
	rng := newStream(s.seed^seqIndex, shuffleStreamIndex)
	for i := len(vals) - 1; i > 0; i-- {
		j := int(mapRange(rng.Float01(), 0, uint64(i)))
		vals[i], vals[j] = vals[j], vals[i]
	}
}

// StratifiedShuffled is Stratified with the samples decorrelated from their
// generation order.
func (s Sequences) StratifiedShuffled(n int, seqIndex uint64) []float64 {
	out := s.Stratified(n, seqIndex)
	s.shuffle(out, seqIndex)
	return out
}

// RegularOffsetShuffled is RegularOffset with the samples decorrelated from
// their generation order.
func (s Sequences) RegularOffsetShuffled(n int, seqIndex uint64) []float64 {
	out := s.RegularOffset(n, seqIndex)
	s.shuffle(out, seqIndex)
	return out
}

// BlueStream draws n samples from a fresh streaming blue-noise filter. The
// filter is private to the call, so the contract stays safe under the
// one-trial-one-instance ownership rule.
func (s Sequences) BlueStream(n int, seqIndex uint64) []float64 {
	st := NewBlueStream(s.seed, seqIndex)
	out := make([]float64, n)
	for i := range out {
		out[i] = st.Next()
	}
	return out
}

// RedStream draws n samples from a fresh streaming red-noise filter.
func (s Sequences) RedStream(n int, seqIndex uint64) []float64 {
	st := NewRedStream(s.seed, seqIndex)
	out := make([]float64, n)
	for i := range out {
		out[i] = st.Next()
	}
	return out
}

// BlueAppleton draws n samples from a fresh Appleton-construction blue-noise
// stream seeded through the same (seed, seqIndex) scheme.
func (s Sequences) BlueAppleton(n int, seqIndex uint64) []float64 {
	rng := newStream(s.seed, seqIndex)
	st := NewAppletonStream(rng.next())
	out := make([]float64, n)
	for i := range out {
		out[i] = st.Next()
	}
	return out
}

// All returns the full generator family in report order.
func (s Sequences) All() []Generator {
	return []Generator{
		{Name: "White Noise", Fn: s.White},
		{Name: "Golden Ratio", Fn: s.GoldenRatio},
		{Name: "Stratified", Fn: s.Stratified, CandidatesFn: s.StratifiedShuffled},
		{Name: "Regular Offset", Fn: s.RegularOffset, CandidatesFn: s.RegularOffsetShuffled},
		{Name: "Blue Noise (naive)", Fn: s.BlueNaive},
		{Name: "Red Noise (naive)", Fn: s.RedNaive},
		{Name: "Blue Noise (stream)", Fn: s.BlueStream},
		{Name: "Red Noise (stream)", Fn: s.RedStream},
		{Name: "Blue Noise (Appleton)", Fn: s.BlueAppleton},
	}
}

// forCandidates picks the decorrelated variant when one exists.
func (g Generator) forCandidates() SequenceFunc {
	if g.CandidatesFn != nil {
		return g.CandidatesFn
	}
	return g.Fn
}
