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
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/aclements/go-moremath/stats"

	"github.com/AleutianAI/sortbench/services/sorting"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrNoSamples indicates that no run durations were collected.
	ErrNoSamples = errors.New("no samples collected")

	// ErrInvalidConfig indicates an invalid benchmark configuration.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrEmptyDataset indicates the runner was handed no data to sort.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrUnsortedOutput indicates a verified run produced unsorted output.
	ErrUnsortedOutput = errors.New("algorithm produced unsorted output")
)

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// Config holds benchmark configuration.
//
// Description:
//
//	Config controls how many timed runs each algorithm gets, how many
//	untimed warmup runs precede them, and how many algorithms may run at
//	once. Use DefaultConfig() and override fields as needed.
//
// Thread Safety: Safe for concurrent read access after initialization.
type Config struct {
	// Runs is the number of timed runs per algorithm.
	// Default: 10
	Runs int

	// Warmup is the number of untimed runs per algorithm before measuring.
	// Default: 0
	Warmup int

	// Parallelism caps how many algorithms run concurrently.
	// Zero means one worker per algorithm.
	// Default: 0
	Parallelism int

	// Verify checks every timed run's output with sorting.IsSorted.
	// The check happens outside the timed section.
	// Default: false
	Verify bool
}

// DefaultConfig returns a configuration with default values.
//
// Outputs:
//   - *Config: Configuration with default values. Never nil.
func DefaultConfig() *Config {
	return &Config{
		Runs:        10,
		Warmup:      0,
		Parallelism: 0,
		Verify:      false,
	}
}

// Validate checks that the configuration is valid.
//
// Outputs:
//   - error: Wraps ErrInvalidConfig naming the offending field.
func (c *Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidConfig, c.Runs)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must be non-negative, got %d", ErrInvalidConfig, c.Warmup)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism must be non-negative, got %d", ErrInvalidConfig, c.Parallelism)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Results
// -----------------------------------------------------------------------------

// RunResult is the wall-clock duration of one timed sort.
type RunResult struct {
	Algorithm sorting.Algorithm
	Duration  time.Duration
}

// Entry is the aggregate of all runs of one algorithm.
//
// Description:
//
//	Entry is the unit of the JSON report. Times are in seconds, in run
//	order. MinTime <= AverageTime <= MaxTime and Runs == len(Times).
//
// Thread Safety: Safe for concurrent read access after creation.
type Entry struct {
	Algorithm    string    `json:"algorithm"`
	Runs         int       `json:"runs"`
	Times        []float64 `json:"times"`
	AverageTime  float64   `json:"average_time"`
	MinTime      float64   `json:"min_time"`
	MaxTime      float64   `json:"max_time"`
	StdDeviation float64   `json:"std_deviation"`
}

// Report is the full benchmark output: one Entry per algorithm, ordered
// by algorithm name.
type Report []Entry

// Find returns the entry for the named algorithm.
func (r Report) Find(name string) (Entry, bool) {
	for _, e := range r {
		if e.Algorithm == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Stats holds summary statistics over run durations, in seconds.
type Stats struct {
	// Mean is the arithmetic mean.
	Mean float64

	// Min is the fastest run.
	Min float64

	// Max is the slowest run.
	Max float64

	// StdDev is the population standard deviation (divisor n).
	StdDev float64

	// Variance is StdDev squared.
	Variance float64
}

// -----------------------------------------------------------------------------
// Statistics Functions
// -----------------------------------------------------------------------------

// CalculateStats computes summary statistics from run durations.
//
// Description:
//
//	Converts each duration to float seconds and computes min, max, mean
//	and population variance. Floating-point summation can push the mean a
//	few ulps outside [Min, Max] when all samples are equal, so the mean is
//	clamped into that interval.
//
// Inputs:
//   - samples: Run durations. Must not be empty.
//
// Outputs:
//   - Stats: Computed statistics.
//   - error: ErrNoSamples if samples is empty.
//
// Thread Safety: This function is stateless and safe for concurrent use.
//
// Example:
//
//	stats, err := CalculateStats([]time.Duration{time.Millisecond, 3 * time.Millisecond})
//	// stats.Mean == 0.002, stats.StdDev == 0.001
func CalculateStats(samples []time.Duration) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ErrNoSamples
	}
	return statsOf(seconds(samples)), nil
}

func statsOf(xs []float64) Stats {
	s := Stats{Min: xs[0], Max: xs[0]}

	var sum float64
	for _, x := range xs {
		sum += x
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	s.Mean = math.Min(math.Max(sum/float64(len(xs)), s.Min), s.Max)

	var sumSquaredDiff float64
	for _, x := range xs {
		diff := x - s.Mean
		sumSquaredDiff += diff * diff
	}
	s.Variance = sumSquaredDiff / float64(len(xs))
	s.StdDev = math.Sqrt(s.Variance)

	return s
}

// NewEntry aggregates the durations of one algorithm into a report entry.
//
// Outputs:
//   - Entry: Times are in run order.
//   - error: ErrNoSamples if durations is empty.
func NewEntry(name string, durations []time.Duration) (Entry, error) {
	if len(durations) == 0 {
		return Entry{}, fmt.Errorf("%s: %w", name, ErrNoSamples)
	}
	times := seconds(durations)
	s := statsOf(times)
	return Entry{
		Algorithm:    name,
		Runs:         len(times),
		Times:        times,
		AverageTime:  s.Mean,
		MinTime:      s.Min,
		MaxTime:      s.Max,
		StdDeviation: s.StdDev,
	}, nil
}

// Quantiles holds order statistics of an entry's run times, in seconds.
type Quantiles struct {
	Median float64
	P90    float64
}

// Quantiles computes the median and 90th percentile of the entry's times.
//
// Returns the zero value for an entry without times.
func (e Entry) Quantiles() Quantiles {
	if len(e.Times) == 0 {
		return Quantiles{}
	}
	samp := stats.Sample{Xs: slices.Clone(e.Times)}
	// Speed up order statistics.
	samp.Sort()
	return Quantiles{
		Median: samp.Quantile(0.5),
		P90:    samp.Quantile(0.9),
	}
}

// seconds converts durations to float seconds with nanosecond resolution.
func seconds(samples []time.Duration) []float64 {
	out := make([]float64, len(samples))
	for i, d := range samples {
		out[i] = d.Seconds()
	}
	return out
}
