package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilteredStreamReplay(t *testing.T) {
	const n = 10000

	a := NewBlueStream(123, 9)
	b := NewBlueStream(123, 9)
	for i := 0; i < n; i++ {
		require.Equal(t, a.Next(), b.Next(), "blue draw %d", i)
	}

	c := NewRedStream(123, 9)
	d := NewRedStream(123, 9)
	for i := 0; i < n; i++ {
		require.Equal(t, c.Next(), d.Next(), "red draw %d", i)
	}
}

// TestFilteredStreamSpectrum checks the sign of the correlation the FIR
// kernel induces between consecutive outputs: negative for the high-pass
// (blue) kernel, positive for the low-pass (red) one.
func TestFilteredStreamSpectrum(t *testing.T) {
	const n = 100000

	blue := drawStream(NewBlueStream(2025, 0), n)
	red := drawStream(NewRedStream(2025, 1), n)

	require.Negative(t, serialCorrelation(blue))
	require.Positive(t, serialCorrelation(red))
}

// TestFilteredStreamMarginal checks that the cubic CDF correction restores
// an approximately uniform marginal. The correction is an empirical fit, so
// a strict goodness-of-fit test would reject it at this sample size; bin
// frequencies are checked against a coarse tolerance instead.
func TestFilteredStreamMarginal(t *testing.T) {
	const n = 200000
	const bins = 10

	for name, samples := range map[string][]float64{
		"blue": drawStream(NewBlueStream(7, 0), n),
		"red":  drawStream(NewRedStream(7, 1), n),
	} {
		counts := make([]int, bins)
		for _, v := range samples {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
			b := int(v * bins)
			if b >= bins {
				b = bins - 1
			}
			counts[b]++
		}
		expected := float64(n) / bins
		for b, c := range counts {
			require.InDelta(t, expected, float64(c), expected*0.15,
				"%s bin %d", name, b)
		}
	}
}

func TestAppletonStream(t *testing.T) {
	const n = 100000

	a := NewAppletonStream(0xCAFE)
	b := NewAppletonStream(0xCAFE)

	var mean runningMoments
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		v := a.Next()
		require.Equal(t, v, b.Next(), "draw %d", i)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
		samples[i] = v
		mean.add(v)
	}

	// The construction claims uniformity without a corrective transform;
	// verify the first two moments and the blue-noise neighbor signature
	// rather than assuming it.
	require.InDelta(t, 0.5, mean.mean, 0.01)
	require.InDelta(t, 1.0/12.0, mean.variance(), 0.02)
	require.Negative(t, serialCorrelation(samples))
}

func drawStream(next interface{ Next() float64 }, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = next.Next()
	}
	return out
}
