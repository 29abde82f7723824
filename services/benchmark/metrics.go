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
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for benchmark operations.
var (
	tracer = otel.Tracer("sortbench.benchmark")
	meter  = otel.Meter("sortbench.benchmark")
)

// Metrics for benchmark operations.
var (
	runDuration metric.Float64Histogram
	runsTotal   metric.Int64Counter
	datasetSize metric.Int64Gauge

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runDuration, err = meter.Float64Histogram(
			"sortbench_run_duration_seconds",
			metric.WithDescription("Wall-clock duration of one timed sort"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runsTotal, err = meter.Int64Counter(
			"sortbench_runs_total",
			metric.WithDescription("Total number of timed sorts"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		datasetSize, err = meter.Int64Gauge(
			"sortbench_dataset_size",
			metric.WithDescription("Number of values in the benchmarked dataset"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startBenchmarkSpan creates the parent span for a whole benchmark.
func startBenchmarkSpan(ctx context.Context, size, algorithms, runs int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Runner.Run",
		trace.WithAttributes(
			attribute.Int("benchmark.dataset_size", size),
			attribute.Int("benchmark.algorithms", algorithms),
			attribute.Int("benchmark.runs", runs),
		),
	)
}

// startAlgorithmSpan creates a span covering every run of one algorithm.
func startAlgorithmSpan(ctx context.Context, algorithm string, runs int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Runner.runAlgorithm",
		trace.WithAttributes(
			attribute.String("benchmark.algorithm", algorithm),
			attribute.Int("benchmark.runs", runs),
		),
	)
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// recordRun records metrics for one timed sort.
func recordRun(ctx context.Context, algorithm string, d time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("algorithm", algorithm))
	runDuration.Record(ctx, d.Seconds(), attrs)
	runsTotal.Add(ctx, 1, attrs)
}

// recordDatasetSize records the size of the dataset being benchmarked.
func recordDatasetSize(ctx context.Context, n int) {
	if err := initMetrics(); err != nil {
		return
	}
	datasetSize.Record(ctx, int64(n))
}
