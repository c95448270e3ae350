package logx

import (
	"fmt"
	"strings"
	"time"
)

// LogProgress - single line trial progress log
// done/total: completed vs scheduled outer trials across the whole run
// rate: trials per second over the reporting interval
// experiment/generator: the unit of work currently in flight
func LogProgress(done, total uint64, rate float64, elapsed time.Duration, experiment, generator string) {
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(done) / float64(total)
	}
	eta := "-"
	if rate > 0 && total > done {
		eta = FormatDuration(time.Duration(float64(total-done)/rate) * time.Second)
	}
	fmt.Printf("%s  %s  trials=%s/%s (%.1f%%)  rate=%.0f/s  elapsed=%s  eta=%s  [%s / %s]\n",
		TS(), Channel("RUN "),
		FormatNumber(int(done)), FormatNumber(int(total)), pct,
		rate, FormatDuration(elapsed), eta,
		experiment, generator,
	)
}

// LogExperimentStart announces one (experiment, generator) unit of work.
func LogExperimentStart(experiment, generator string, trials int) {
	fmt.Printf("%s  %s  %s x %s trials  [%s]\n",
		TS(), Channel("EXP "), experiment, FormatNumber(trials), generator)
}

// LogAnomaly reports a recoverable per-trial anomaly count (e.g. exhausted
// sample windows) without aborting the run.
func LogAnomaly(experiment, generator string, count, trials int) {
	fmt.Printf("%s  %s  %s: %d/%d trials excluded  [%s]\n",
		TS(), Channel("WARN"),
		experiment, count, trials, generator)
}

// FormatDuration shows hours, minutes, and seconds (e.g. "1h23m" or "45m32s" or "23s")
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", hours, minutes)
}

// FormatNumber formats a number with thousands separators (e.g. 12,345)
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{s[start:i]}, result...)
	}
	return strings.Join(result, ",")
}
