package main

import (
	"fmt"
	"math"
	"os"

	"euler_noise_lab/logx"
)

// GeneratorReport is the full set of experiment aggregates for one generator.
type GeneratorReport struct {
	Name       string
	Lottery    LotteryResult
	Sum        SumResult
	Candidates CandidatesResult
}

// printReport writes the final per-generator table. Estimates are
// color-coded by their distance from the theoretical targets.
func printReport(cfg Config, reports []GeneratorReport) {
	w := float64(cfg.LotteryWinFrequency)
	loseTarget := 100 * math.Pow(1-1/w, w)
	bestTarget := 100 / math.E

	fmt.Println()
	fmt.Printf("%s  %s  theoretical: e=%.5f  1/e=%.5f  lottery lose=%.2f%% (W=%s)\n",
		logx.TS(), logx.Channel("RUN "),
		math.E, 1/math.E, loseTarget, logx.FormatNumber(int(cfg.LotteryWinFrequency)))
	fmt.Println()

	tw := logx.NewTableWriter(os.Stdout)
	fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		logx.Bold("Generator"),
		logx.Bold("Lottery lose %"),
		logx.Bold("Sum mean"),
		logx.Bold("Sum var"),
		logx.Bold("Sum p50/p90"),
		logx.Bold("Best found %"),
		logx.Bold("Mean pick"))
	for _, r := range reports {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%.3f\t%.0f/%.0f\t%s\t%.1f\n",
			r.Name,
			logx.Value(r.Lottery.LosePercent, loseTarget, "%.2f"),
			logx.Value(r.Sum.Mean, math.E, "%.4f"),
			r.Sum.Variance,
			r.Sum.Median, r.Sum.P90,
			logx.Value(r.Candidates.BestFoundPercent, bestTarget, "%.2f"),
			r.Candidates.MeanSelection)
	}
	tw.Flush()
	fmt.Println()

	for _, r := range reports {
		if r.Sum.Exhausted > 0 {
			logx.LogAnomaly("sum", r.Name, r.Sum.Exhausted, r.Sum.Trials)
		}
	}
}
