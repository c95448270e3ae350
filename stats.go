package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// lerp is the standard linear interpolation A + (B-A)*t.
func lerp(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

// runningMoments folds trial outcomes into a running mean and mean of
// squares using the streaming-average identity mean = lerp(mean, x, 1/(n+1)).
// Must be fed in fixed slot order for reproducible rounding.
type runningMoments struct {
	n      int
	mean   float64
	meanSq float64
}

func (m *runningMoments) add(x float64) {
	t := 1.0 / float64(m.n+1)
	m.mean = lerp(m.mean, x, t)
	m.meanSq = lerp(m.meanSq, x*x, t)
	m.n++
}

// variance derives Var[X] = E[X^2] - E[X]^2 from the running moments.
func (m *runningMoments) variance() float64 {
	v := m.meanSq - m.mean*m.mean
	if v < 0 {
		v = 0
	}
	return v
}

// chiSquareUniformP bins samples from [0,1) into bins equal cells and
// returns the p-value of the chi-square test against the uniform
// distribution.
func chiSquareUniformP(samples []float64, bins int) float64 {
	if len(samples) == 0 || bins < 2 {
		return 1.0
	}
	counts := make([]float64, bins)
	for _, v := range samples {
		b := int(v * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
	}
	expected := float64(len(samples)) / float64(bins)
	chi2 := 0.0
	for _, c := range counts {
		d := c - expected
		chi2 += d * d / expected
	}
	dist := distuv.ChiSquared{K: float64(bins - 1)}
	return dist.Survival(chi2)
}

// ksUniformP returns the p-value of the one-sample Kolmogorov-Smirnov test
// of samples against the uniform distribution on [0,1), using the usual
// asymptotic tail approximation.
func ksUniformP(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 1.0
	}
	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	d := 0.0
	for i, v := range sorted {
		lo := v - float64(i)/float64(n)
		hi := float64(i+1)/float64(n) - v
		if lo > d {
			d = lo
		}
		if hi > d {
			d = hi
		}
	}

	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	return ksTail(lambda)
}

// ksTail evaluates the Kolmogorov distribution tail Q(lambda).
func ksTail(lambda float64) float64 {
	if lambda <= 0 {
		return 1.0
	}
	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k)*float64(k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
