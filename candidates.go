package main

import (
	"context"
	"math"
	"sync/atomic"
)

// CandidatesResult is the aggregate of one generator's best-candidate runs.
type CandidatesResult struct {
	BestFoundPercent float64 // trials where the true best was selected; -> 100/e
	MeanSelection    float64 // mean index at which the rule committed
	Fallbacks        int     // trials that fell through to the last candidate
	Trials           int
}

// runCandidates plays the secretary rule per trial: observe the first n/e
// candidates to set a threshold, then commit to the first later candidate
// above it, falling back to the last one. The rule finds the true best with
// probability approaching 1/e.
func runCandidates(ctx context.Context, cfg Config, gen Generator, genID int, progress *atomic.Uint64) (CandidatesResult, error) {
	plan := newIndexPlan(expCandidates, genID, 1)
	n := cfg.CandidateCount
	lookCount := int(float64(n) / math.E)
	fn := gen.forCandidates()

	type outcome struct {
		selection int
		bestFound bool
		fallback  bool
	}
	outcomes := make([]outcome, cfg.CandidateTrials)

	err := forEachTrial(ctx, cfg.Workers, cfg.CandidateTrials, progress, func(trial int) {
		seq := fn(n, plan.trialIndex(trial, 0))

		lookMax := seq[0]
		for _, v := range seq[1:lookCount] {
			if v > lookMax {
				lookMax = v
			}
		}

		selection := -1
		for i := lookCount; i < n; i++ {
			if seq[i] > lookMax {
				selection = i
				break
			}
		}
		fallback := selection < 0
		if fallback {
			// The look-phase maximum was never beaten; the rule commits
			// deterministically to the last candidate.
			selection = n - 1
		}

		// Rank 0 means no candidate in the pool beats the selection.
		rank := 0
		for _, v := range seq {
			if v > seq[selection] {
				rank++
			}
		}

		outcomes[trial] = outcome{selection: selection, bestFound: rank == 0, fallback: fallback}
	})
	if err != nil {
		return CandidatesResult{}, err
	}

	var found, selIdx runningMoments
	fallbacks := 0
	for _, o := range outcomes {
		hit := 0.0
		if o.bestFound {
			hit = 1.0
		}
		found.add(hit)
		selIdx.add(float64(o.selection))
		if o.fallback {
			fallbacks++
		}
	}
	return CandidatesResult{
		BestFoundPercent: 100 * found.mean,
		MeanSelection:    selIdx.mean,
		Fallbacks:        fallbacks,
		Trials:           cfg.CandidateTrials,
	}, nil
}
