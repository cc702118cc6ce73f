// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonis/Sorting/internal/bench"
	"github.com/simonis/Sorting/internal/config"
	"github.com/simonis/Sorting/internal/logx"
	"github.com/simonis/Sorting/internal/results"
	"github.com/simonis/Sorting/internal/selftest"
	"github.com/simonis/Sorting/internal/sysinfo"
	"github.com/simonis/Sorting/workerpool"
)

// options is shared by every subcommand.
type options struct {
	configPath string
	flags      *config.Flags
}

func (o *options) load() (config.Config, error) {
	return config.Load(o.configPath, o.flags)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "qsortbench",
		Short:         "Self-test, warm up and time the serial and parallel quicksort",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runBench(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml, .yml, .toml or .json)")
	opts.flags = config.BindFlags(pf)

	cmd.AddCommand(newCheckCmd(opts), newHistoryCmd(opts))
	return cmd
}

// runBench is the full sequence: self-test, warm-up, measurement, history.
func runBench(ctx context.Context, cfg config.Config, out, logOut io.Writer) error {
	log := newLogger(cfg, logOut).With(logx.String("cmd", "run"))
	host := sysinfo.Detect()
	workers := cfg.Workers()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("qsortbench.start",
		logx.String("host", host.String()),
		logx.Bool("parallel", cfg.Parallel),
		logx.Int("workers", workers),
		logx.Int("threshold", cfg.Threshold),
		logx.Int64("seed", seed),
	)

	if cfg.Parallel && workers > host.GOMAXPROCS {
		log.Warn("pool.oversubscribed", logx.Int("workers", workers), logx.Int("gomaxprocs", host.GOMAXPROCS))
	}

	pool := workerpool.New(workers)
	defer pool.Close()

	rep, err := selftest.Runner{Pool: pool, Threshold: cfg.Threshold, Debug: cfg.Debug, Log: log}.RunBuiltin()
	if err != nil {
		log.Error("selftest.failed", logx.Err(err))
		return err
	}
	log.Info("selftest.finished", logx.Int("cases", rep.Cases), logx.Int("sorts", rep.Sorts))
	if _, err := fmt.Fprintf(out, "# Test finished: %d cases, %d sorts\n", rep.Cases, rep.Sorts); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	sortFn := bench.Serial()
	if cfg.Parallel {
		sortFn = bench.Parallel(pool, cfg.Threshold)
	}

	if cfg.Warmup.Rounds > 0 {
		if err := bench.Warmup(ctx, log, cfg.Warmup.Rounds, cfg.Warmup.Size, seed, bench.Serial(), sortFn); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, "# Warmup finished"); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	if cfg.Parallel {
		log.Info("pool.ready", logx.Int("workers", pool.NumWorkers()))
		if _, err := fmt.Fprintf(out, "# Using worker pool of size: %d\n", pool.NumWorkers()); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	arrays := bench.Generate(pool, bench.Setup{
		BaseSize:   cfg.BaseSize,
		Iterations: cfg.Iterations,
		Samples:    cfg.Samples,
		Seed:       seed,
	})

	started := time.Now()
	rows, err := bench.Measure(ctx, log, arrays, sortFn)
	if err != nil {
		return err
	}
	took := time.Since(started)

	if err := bench.WriteRows(out, bench.ColumnHead(cfg.Parallel, workers), rows); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	sum := bench.Summarize(rows)
	log.Info("measure.finished",
		logx.Int("sizes", sum.Sizes),
		logx.Int("elements", sum.Elements),
		logx.Duration("total", sum.Total),
		logx.Int("slowest_size", sum.Slowest.Size),
	)

	return saveRun(ctx, log, cfg, results.Run{
		Started:   started,
		Parallel:  cfg.Parallel,
		Workers:   workers,
		Threshold: cfg.Threshold,
		Host:      host.String(),
		Took:      took,
		Rows:      rows,
	})
}

func saveRun(ctx context.Context, log logx.Logger, cfg config.Config, run results.Run) error {
	st, err := results.Open(ctx, cfg.Results.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	if st == nil {
		return nil
	}
	defer st.Close()

	id, err := st.SaveRun(ctx, run)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	log.Info("history.saved", logx.String("path", cfg.Results.Path), logx.Int64("run", id))
	return nil
}

// newLogger builds the run's logger. Debug mode lowers the level to at least
// debug so the per-case self-test lines are written.
func newLogger(cfg config.Config, w io.Writer) logx.Logger {
	level := cfg.Log.Level
	if cfg.Debug && logx.ParseLevel(level, logx.LevelInfo) > logx.LevelDebug {
		level = "debug"
	}
	return logx.New(logx.Config{Level: level, Console: cfg.Log.Console}, w)
}
