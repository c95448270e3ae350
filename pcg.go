package main

import (
	"math"
	"math/bits"
)

// pcgStream is a 32-bit PCG-XSH-RR generator with explicit stream selection.
// Each (seed, sequenceIndex) pair yields an independent stream: the sequence
// index feeds the LCG increment, so distinct indices walk disjoint orbits of
// the same multiplier without any re-hashing of the seed.
type pcgStream struct {
	state uint64
	inc   uint64
}

const pcgMultiplier = 6364136223846793005

// newStream initializes a stream for one (seed, sequenceIndex) pair.
// Same pair always replays identically.
func newStream(seed, sequenceIndex uint64) pcgStream {
	p := pcgStream{state: 0, inc: sequenceIndex<<1 | 1}
	p.next()
	p.state += seed
	p.next()
	return p
}

// next advances the LCG and applies the XSH-RR output permutation.
func (p *pcgStream) next() uint32 {
	oldstate := p.state
	p.state = oldstate*pcgMultiplier + p.inc
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := int(oldstate >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Float01 returns a uniform float in [0,1) using the full 32-bit output,
// scaled by 2^-32. Scaling keeps all output bits; a modulo would bias the
// low bits.
func (p *pcgStream) Float01() float64 {
	return math.Ldexp(float64(p.next()), -32)
}

// mapRange converts a uniform float in [0,1) to an integer in [lo,hi] by
// linear scaling over hi-lo+1 values, clamped to hi so that an input of
// exactly 1.0 (impossible from Float01, possible from filtered sources)
// stays in range.
func mapRange(f float64, lo, hi uint64) uint64 {
	span := hi - lo
	v := uint64(f * float64(span+1))
	if v > span {
		v = span
	}
	return lo + v
}
