// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package benchmark

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/sortbench/pkg/logging"
	"github.com/AleutianAI/sortbench/services/sorting"
)

// Runner executes benchmarks.
//
// Description:
//
//	Runner times each selected algorithm against fresh copies of a shared
//	read-only dataset. Algorithms run concurrently in a bounded errgroup,
//	each worker owning its own scratch buffer and result slot.
//
// Thread Safety: Safe for concurrent use. Each Run call is independent.
type Runner struct {
	config *Config
	logger *logging.Logger

	// now is the clock used for timing. Overridden in tests.
	now func() time.Time
}

// NewRunner creates a new benchmark runner.
//
// Inputs:
//   - config: Benchmark configuration. Nil uses DefaultConfig().
//   - logger: Destination for progress logs. Nil discards them.
//
// Outputs:
//   - *Runner: The runner. Nil on error.
//   - error: Wraps ErrInvalidConfig if config fails validation.
func NewRunner(config *Config, logger *logging.Logger) (*Runner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{
		config: config,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Config returns the runner's configuration.
func (r *Runner) Config() Config {
	return *r.config
}

// Run benchmarks every algorithm against data.
//
// Description:
//
//	Every precondition is checked before any timing starts: a non-empty
//	algorithm list, a non-empty dataset and each algorithm's input domain
//	(sorting.Algorithm.CheckInput). Then one task per algorithm performs
//	Warmup untimed and Runs timed sorts, each on a fresh copy of data.
//	Finished entries are merged after every task completes and ordered
//	by algorithm name. Any failure discards all results.
//
// Inputs:
//   - ctx: Checked between runs. Cancellation yields an error, never a
//     partial report.
//   - data: The dataset. Never modified.
//   - algorithms: Distinct algorithms to benchmark.
//
// Outputs:
//   - Report: One entry per algorithm.
//   - error: Non-nil if any precondition or any run fails.
//
// Example:
//
//	runner, _ := NewRunner(&Config{Runs: 3}, logger)
//	report, err := runner.Run(ctx, []int{5, 3, 1, 4, 2}, []sorting.Algorithm{sorting.QuickSort})
func (r *Runner) Run(ctx context.Context, data []int, algorithms []sorting.Algorithm) (Report, error) {
	if len(algorithms) == 0 {
		return nil, sorting.ErrNoAlgorithms
	}
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	for _, a := range algorithms {
		if err := a.CheckInput(data); err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
	}

	ctx, span := startBenchmarkSpan(ctx, len(data), len(algorithms), r.config.Runs)
	recordDatasetSize(ctx, len(data))

	r.logger.Info("benchmark started",
		"dataset_size", len(data),
		"algorithms", len(algorithms),
		"runs", r.config.Runs,
		"warmup", r.config.Warmup,
	)

	entries := make([]Entry, len(algorithms))

	g, gCtx := errgroup.WithContext(ctx)
	limit := r.config.Parallelism
	if limit == 0 || limit > len(algorithms) {
		limit = len(algorithms)
	}
	g.SetLimit(limit)

	for i, a := range algorithms {
		g.Go(func() error {
			entry, err := r.runAlgorithm(gCtx, data, a)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		endSpan(span, err)
		return nil, err
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Algorithm, b.Algorithm)
	})

	endSpan(span, nil)
	r.logger.Info("benchmark finished", "algorithms", len(entries))
	return Report(entries), nil
}

// runAlgorithm performs the warmup and timed runs of one algorithm.
func (r *Runner) runAlgorithm(ctx context.Context, data []int, a sorting.Algorithm) (entry Entry, err error) {
	name := a.String()

	ctx, span := startAlgorithmSpan(ctx, name, r.config.Runs)
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s panicked: %v", name, p)
		}
		endSpan(span, err)
	}()

	runs, err := r.timeRuns(ctx, data, a)
	if err != nil {
		return Entry{}, err
	}

	durations := make([]time.Duration, len(runs))
	for i, res := range runs {
		durations[i] = res.Duration
	}
	entry, err = NewEntry(name, durations)
	if err != nil {
		return Entry{}, err
	}

	r.logger.Info("algorithm complete",
		"algorithm", name,
		"average_time", entry.AverageTime,
		"min_time", entry.MinTime,
		"max_time", entry.MaxTime,
		"std_deviation", entry.StdDeviation,
	)
	return entry, nil
}

// timeRuns sorts a fresh copy of data Warmup times untimed, then Runs
// times under the clock. Results are in run order.
func (r *Runner) timeRuns(ctx context.Context, data []int, a sorting.Algorithm) ([]RunResult, error) {
	name := a.String()
	sortFn := a.Func()
	buf := make([]int, len(data))

	for w := 0; w < r.config.Warmup; w++ {
		copy(buf, data)
		sortFn(buf)
	}

	runs := make([]RunResult, 0, r.config.Runs)
	for run := 0; run < r.config.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: run %d: %w", name, run+1, err)
		}

		copy(buf, data)
		start := r.now()
		sortFn(buf)
		res := RunResult{Algorithm: a, Duration: r.now().Sub(start)}

		if r.config.Verify && !sorting.IsSorted(buf) {
			return nil, fmt.Errorf("%s: run %d: %w", name, run+1, ErrUnsortedOutput)
		}

		runs = append(runs, res)
		recordRun(ctx, name, res.Duration)
		r.logger.Debug("run complete",
			"algorithm", name,
			"run", run+1,
			"seconds", res.Duration.Seconds(),
		)
	}
	return runs, nil
}
