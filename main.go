package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"euler_noise_lab/logx"
	"euler_noise_lab/tui"
)

// workUnit is what the progress reporter shows for the slice of trials
// currently in flight.
type workUnit struct {
	mu         sync.Mutex
	experiment string
	generator  string
}

func (w *workUnit) set(experiment, generator string) {
	w.mu.Lock()
	w.experiment = experiment
	w.generator = generator
	w.mu.Unlock()
}

func (w *workUnit) get() (string, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.experiment, w.generator
}

func main() {
	fmt.Println("Euler Noise Lab - Monte Carlo estimates of e")
	fmt.Println("============================================")

	seedFlag := flag.Uint64("seed", 0, "random seed (0 = OS entropy, nonzero = reproducible)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel workers for the outer trial loop")
	quick := flag.Bool("quick", false, "reduced trial counts for a fast smoke run")
	useTUI := flag.Bool("tui", true, "live dashboard (falls back to plain progress lines on non-TTY)")
	flag.Parse()

	cfg := defaultConfig()
	if *quick {
		cfg = quickConfig()
	}
	cfg.Workers = *workers
	cfg.Seed = *seedFlag
	if cfg.Seed == 0 {
		cfg.Seed = randomSeed()
	}
	fmt.Printf("seed=%d  workers=%d\n\n", cfg.Seed, cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seqs := NewSequences(cfg.Seed)
	gens := seqs.All()
	total := cfg.totalTrials(len(gens))

	var progress atomic.Uint64
	var current workUnit

	if *useTUI {
		if err := tui.Start(ctx, tui.TUIConfig{Title: "Euler Noise Lab", Seed: cfg.Seed}); err != nil {
			fmt.Printf("%s  %s  %v, using plain progress\n", logx.TS(), logx.Channel("RUN "), err)
		}
	}

	// Single reporting goroutine: everyone else only touches the atomic
	// counter.
	start := time.Now()
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		t := time.NewTicker(time.Second)
		defer t.Stop()

		var last uint64
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				cur := progress.Load()
				if cur == last && cur < total {
					continue // nothing moved, keep quiet
				}
				rate := float64(cur - last)
				last = cur
				experiment, generator := current.get()

				if tui.Running() {
					eta := time.Duration(0)
					if rate > 0 && total > cur {
						eta = time.Duration(float64(total-cur)/rate) * time.Second
					}
					tui.Publish(tui.StateSnapshot{
						Title:       "Euler Noise Lab",
						Seed:        cfg.Seed,
						StartTime:   start,
						Experiment:  experiment,
						Generator:   generator,
						DoneTrials:  cur,
						TotalTrials: total,
						RatePerSec:  rate,
						ETA:         eta,
					})
				} else {
					logx.LogProgress(cur, total, rate, time.Since(start), experiment, generator)
				}
				if cur >= total {
					return
				}
			}
		}
	}()

	reports := make([]GeneratorReport, 0, len(gens))
	for genID, gen := range gens {
		rep, err := runAllExperiments(ctx, cfg, seqs, gen, genID, &progress, &current)
		if err != nil {
			// Only context cancellation gets here; partial aggregates are
			// not worth reporting.
			fmt.Printf("\n%s  %s  stopped: %v (completed %s of %s trials)\n",
				logx.TS(), logx.Channel("RUN "), err,
				logx.FormatNumber(int(progress.Load())), logx.FormatNumber(int(total)))
			stop()
			tui.Stop()
			return
		}
		reports = append(reports, rep)
	}

	stop()
	<-reporterDone
	tui.Stop()

	printReport(cfg, reports)
	fmt.Printf("%s  %s  done: %s trials in %s\n",
		logx.TS(), logx.Channel("RUN "),
		logx.FormatNumber(int(progress.Load())), logx.FormatDuration(time.Since(start)))
}

// runAllExperiments pushes one generator through the three experiments.
func runAllExperiments(ctx context.Context, cfg Config, seqs Sequences, gen Generator, genID int, progress *atomic.Uint64, current *workUnit) (GeneratorReport, error) {
	rep := GeneratorReport{Name: gen.Name}

	current.set("lottery", gen.Name)
	announce("lottery", gen.Name, cfg.LotteryTrials)
	lottery, err := runLottery(ctx, cfg, seqs, gen, genID, progress)
	if err != nil {
		return rep, err
	}
	rep.Lottery = lottery

	current.set("sum", gen.Name)
	announce("sum", gen.Name, cfg.SumTrials)
	sum, err := runSum(ctx, cfg, gen, genID, progress)
	if err != nil {
		return rep, err
	}
	rep.Sum = sum
	if sum.Exhausted > 0 {
		tui.PublishEvent("warning", "sum: %d/%d trials exhausted the sample window [%s]",
			sum.Exhausted, sum.Trials, gen.Name)
	}

	current.set("candidates", gen.Name)
	announce("candidates", gen.Name, cfg.CandidateTrials)
	cand, err := runCandidates(ctx, cfg, gen, genID, progress)
	if err != nil {
		return rep, err
	}
	rep.Candidates = cand

	return rep, nil
}

// announce logs the start of one unit of work, to whichever surface owns the
// terminal.
func announce(experiment, generator string, trials int) {
	if tui.Running() {
		tui.PublishEvent("info", "%s x %s trials [%s]", experiment, logx.FormatNumber(trials), generator)
		return
	}
	logx.LogExperimentStart(experiment, generator, trials)
}
