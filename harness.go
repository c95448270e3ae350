package main

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Sequence-index partitioning. The 64-bit index space is carved up
// hierarchically: each (experiment, generator) pair owns a disjoint 2^32-slot
// block, and inside the block every outer trial owns rolesPerTrial
// consecutive slots. No two concurrently executing trials can ever touch the
// same stream.
type indexPlan struct {
	base  uint64
	roles uint64
}

const (
	expLottery = iota
	expSum
	expCandidates
	expCount
)

// Roles within a lottery trial.
const (
	roleWinningNumber = iota
	roleDrawSequence
	lotteryRoles
)

func newIndexPlan(experiment, generator, rolesPerTrial int) indexPlan {
	return indexPlan{
		base:  (uint64(experiment)*64 + uint64(generator)) << 32,
		roles: uint64(rolesPerTrial),
	}
}

// trialIndex returns the sequence index for one role of one outer trial.
func (p indexPlan) trialIndex(trial, role int) uint64 {
	return p.base + uint64(trial)*p.roles + uint64(role)
}

// forEachTrial fans fn out over the outer trial index with bounded
// parallelism. Workers write into preallocated per-trial slots owned by fn's
// closure, so the only shared mutable state is the progress counter. The
// returned error is only ever context cancellation.
func forEachTrial(ctx context.Context, workers, trials int, progress *atomic.Uint64, fn func(trial int)) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for t := w; t < trials; t += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				fn(t)
				progress.Add(1)
			}
			return nil
		})
	}
	return g.Wait()
}
