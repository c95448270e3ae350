package main

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/montanaflynn/stats"
)

// SumResult is the aggregate of one generator's running-sum runs.
type SumResult struct {
	Mean      float64 // expected draws for the running sum to reach 1.0; -> e
	Variance  float64
	Median    float64
	P90       float64
	Exhausted int // trials whose sum never reached 1.0 inside the window
	Trials    int
}

// runSum counts, per trial, how many generator draws a running sum needs to
// reach 1.0. The expectation of that count over uniform draws is e.
//
// A trial that exhausts its sample window is a recoverable anomaly: it is
// excluded from the reduction (leaving the slot's zero value in the average
// would silently bias the mean low) and surfaced in the result instead.
func runSum(ctx context.Context, cfg Config, gen Generator, genID int, progress *atomic.Uint64) (SumResult, error) {
	plan := newIndexPlan(expSum, genID, 1)

	counts := make([]float64, cfg.SumTrials)
	err := forEachTrial(ctx, cfg.Workers, cfg.SumTrials, progress, func(trial int) {
		draws := gen.Fn(cfg.SumWindow, plan.trialIndex(trial, 0))
		sum := 0.0
		counts[trial] = math.NaN() // stays NaN on exhaustion
		for i, v := range draws {
			sum += v
			if sum >= 1.0 {
				counts[trial] = float64(i + 1)
				break
			}
		}
	})
	if err != nil {
		return SumResult{}, err
	}

	var m runningMoments
	valid := make([]float64, 0, len(counts))
	exhausted := 0
	for _, c := range counts {
		if math.IsNaN(c) {
			exhausted++
			continue
		}
		m.add(c)
		valid = append(valid, c)
	}

	res := SumResult{
		Mean:      m.mean,
		Variance:  m.variance(),
		Exhausted: exhausted,
		Trials:    cfg.SumTrials,
	}
	if len(valid) > 0 {
		res.Median, _ = stats.Median(valid)
		res.P90, _ = stats.Percentile(valid, 90)
	}
	return res, nil
}
