package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// serialCorrelation is the lag-1 Pearson correlation of a sample sequence;
// its sign is the blue/red spectral signature the noise tests look for.
func serialCorrelation(samples []float64) float64 {
	n := len(samples)
	return stat.Correlation(samples[:n-1], samples[1:], nil)
}

func TestLerp(t *testing.T) {
	require.Equal(t, 1.0, lerp(1, 5, 0))
	require.Equal(t, 5.0, lerp(1, 5, 1))
	require.Equal(t, 3.0, lerp(1, 5, 0.5))
}

// TestRunningMoments checks the streaming-average identity against direct
// computation.
func TestRunningMoments(t *testing.T) {
	rng := newStream(8, 0)
	xs := make([]float64, 10000)
	var m runningMoments
	for i := range xs {
		xs[i] = rng.Float01() * 10
		m.add(xs[i])
	}

	require.InDelta(t, stat.Mean(xs, nil), m.mean, 1e-9)

	// variance() is the population variance E[X^2]-E[X]^2
	meanSq := 0.0
	for _, x := range xs {
		meanSq += x * x
	}
	meanSq /= float64(len(xs))
	wantVar := meanSq - m.mean*m.mean
	require.InDelta(t, wantVar, m.variance(), 1e-6)
}

func TestChiSquareUniformP(t *testing.T) {
	rng := newStream(15, 0)

	uniform := make([]float64, 50000)
	for i := range uniform {
		uniform[i] = rng.Float01()
	}
	require.Greater(t, chiSquareUniformP(uniform, 20), 0.01)

	skewed := make([]float64, 50000)
	for i := range skewed {
		v := rng.Float01()
		skewed[i] = v * v
	}
	require.Less(t, chiSquareUniformP(skewed, 20), 1e-6)
}

func TestKSUniformP(t *testing.T) {
	rng := newStream(16, 0)

	uniform := make([]float64, 50000)
	for i := range uniform {
		uniform[i] = rng.Float01()
	}
	require.Greater(t, ksUniformP(uniform), 0.01)

	skewed := make([]float64, 50000)
	for i := range skewed {
		v := rng.Float01()
		skewed[i] = v * v
	}
	require.Less(t, ksUniformP(skewed), 1e-6)
}
