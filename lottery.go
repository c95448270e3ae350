package main

import (
	"context"
	"sync/atomic"
)

// LotteryResult is the aggregate of one generator's lottery runs.
type LotteryResult struct {
	LosePercent float64 // percentage of trials where nobody won; -> 100/e
	Trials      int
}

// runLottery plays, per trial, an N-draw 1/N lottery: one winning number
// from a white draw, then W samples from the generator under test, win on
// the first exact match. With decorrelated draws the lose rate approaches
// (1 - 1/W)^W = 1/e.
func runLottery(ctx context.Context, cfg Config, seqs Sequences, gen Generator, genID int, progress *atomic.Uint64) (LotteryResult, error) {
	plan := newIndexPlan(expLottery, genID, lotteryRoles)
	w := cfg.LotteryWinFrequency

	losses := make([]float64, cfg.LotteryTrials)
	err := forEachTrial(ctx, cfg.Workers, cfg.LotteryTrials, progress, func(trial int) {
		winning := mapRange(seqs.White(1, plan.trialIndex(trial, roleWinningNumber))[0], 0, w-1)

		losses[trial] = 1.0
		draws := gen.Fn(int(w), plan.trialIndex(trial, roleDrawSequence))
		for _, f := range draws {
			if mapRange(f, 0, w-1) == winning {
				losses[trial] = 0.0
				break
			}
		}
	})
	if err != nil {
		return LotteryResult{}, err
	}

	// Reduce in slot order, not completion order, so the lerp chain is
	// reproducible.
	var m runningMoments
	for _, loss := range losses {
		m.add(loss)
	}
	return LotteryResult{
		LosePercent: 100 * m.mean,
		Trials:      cfg.LotteryTrials,
	}, nil
}
