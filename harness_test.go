package main

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEachTrialCoversAllSlots(t *testing.T) {
	const trials = 10000

	var progress atomic.Uint64
	hits := make([]int32, trials)
	err := forEachTrial(context.Background(), 8, trials, &progress, func(trial int) {
		atomic.AddInt32(&hits[trial], 1)
	})
	require.NoError(t, err)
	require.Equal(t, uint64(trials), progress.Load())

	for i, h := range hits {
		require.Equal(t, int32(1), h, "slot %d", i)
	}
}

func TestForEachTrialCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var progress atomic.Uint64
	err := forEachTrial(ctx, 4, 1000000, &progress, func(int) {})
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, progress.Load(), uint64(1000000))
}

// TestIndexPlanDisjoint verifies the hierarchical partitioning: no two
// (experiment, generator, trial, role) tuples may map to the same sequence
// index.
func TestIndexPlanDisjoint(t *testing.T) {
	seen := make(map[uint64]bool)
	for exp := 0; exp < expCount; exp++ {
		for gen := 0; gen < 9; gen++ {
			plan := newIndexPlan(exp, gen, lotteryRoles)
			for trial := 0; trial < 500; trial++ {
				for role := 0; role < lotteryRoles; role++ {
					idx := plan.trialIndex(trial, role)
					require.False(t, seen[idx], "index %d reused", idx)
					seen[idx] = true
				}
			}
		}
	}
}
