// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/sortbench/pkg/cli"
	"github.com/AleutianAI/sortbench/pkg/config"
	"github.com/AleutianAI/sortbench/pkg/logging"
	"github.com/AleutianAI/sortbench/pkg/ux"
	"github.com/AleutianAI/sortbench/services/benchmark"
	"github.com/AleutianAI/sortbench/services/dataset"
	"github.com/AleutianAI/sortbench/services/sorting"
	"github.com/AleutianAI/sortbench/services/telemetry"
)

// telemetryShutdownTimeout bounds the exporter flush at exit.
const telemetryShutdownTimeout = 5 * time.Second

// runBenchmark is the root command's action.
//
// # Description
//
// Every command-line and config problem is reported before the dataset is
// read or any timing starts; a failed run writes no report. Order:
//
//  1. required flags, config, flag overrides, algorithm names
//  2. logger and telemetry
//  3. dataset load
//  4. benchmark
//  5. report file, stdout echo, optional console summary
func runBenchmark(cmd *cobra.Command, opts *benchOptions, stdout, stderr io.Writer) error {
	if opts.file == "" {
		return cli.Usagef("missing required argument --file")
	}
	if opts.algorithms == "" {
		return cli.Usagef("missing required argument --algorithms")
	}

	cfg, source, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	benchCfg, err := harnessConfig(cmd, opts, cfg.Harness)
	if err != nil {
		return err
	}
	algorithms, err := sorting.ParseAlgorithms(opts.algorithms)
	if err != nil {
		return cli.NewUsageError(err)
	}

	logger, err := newLogger(opts.logLevel, cfg.Logging, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger = logger.With("run_id", uuid.NewString())
	if source != "" {
		logger.Debug("config loaded", "path", source)
	}

	ctx := cmd.Context()
	shutdown, err := telemetry.Init(ctx, telemetryConfig(cfg.Telemetry, stderr))
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	data, err := dataset.Load(opts.file)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	logger.Info("dataset loaded", "path", opts.file, "size", len(data))

	runner, err := benchmark.NewRunner(benchCfg, logger)
	if err != nil {
		return cli.NewUsageError(err)
	}
	report, err := runner.Run(ctx, data, algorithms)
	if err != nil {
		return err
	}

	primary := cfg.Harness.ResultsPath()
	if opts.output != "" {
		primary = opts.output
	}
	written, err := benchmark.WriteReport(report, primary, cfg.Harness.FallbackFile, logger)
	if err != nil {
		return fmt.Errorf("could not create results file: %w", err)
	}

	if err := benchmark.NewJSONReporter(stdout).Report(report); err != nil {
		return err
	}
	if opts.summary || isTerminal(stderr) {
		verbose := logger.Slog().Enabled(ctx, slog.LevelDebug)
		if err := benchmark.NewConsoleReporter(stderr, verbose).Report(report); err != nil {
			return err
		}
	}
	fmt.Fprintf(stderr, "Sorting completed. Results saved to %s\n", written)
	return nil
}

// harnessConfig merges flags over the config file. Only flags set on the
// command line override.
func harnessConfig(cmd *cobra.Command, opts *benchOptions, h config.HarnessConfig) (*benchmark.Config, error) {
	bc := &benchmark.Config{
		Runs:        h.Runs,
		Warmup:      h.Warmup,
		Parallelism: h.Parallelism,
		Verify:      h.Verify,
	}
	flags := cmd.Flags()
	if flags.Changed("runs") {
		bc.Runs = opts.runs
	}
	if flags.Changed("warmup") {
		bc.Warmup = opts.warmup
	}
	if flags.Changed("parallel") {
		bc.Parallelism = opts.parallel
	}
	if flags.Changed("verify") {
		bc.Verify = opts.verify
	}

	if err := bc.Validate(); err != nil {
		return nil, cli.NewUsageError(err)
	}
	return bc, nil
}

// newLogger builds the stderr logger. flagLevel wins over the config.
func newLogger(flagLevel string, lc config.LoggingConfig, stderr io.Writer) (*logging.Logger, error) {
	name := lc.Level
	if flagLevel != "" {
		name = flagLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, cli.NewUsageError(err)
	}
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  lc.Dir,
		Service: "sortbench",
		JSON:    lc.JSON,
		Output:  stderr,
	}), nil
}

// telemetryConfig maps the file's telemetry section. The OTEL_* variables
// win over the file.
func telemetryConfig(tc config.TelemetryConfig, stderr io.Writer) telemetry.Config {
	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = tc.TraceExporter
	cfg.MetricExporter = tc.MetricExporter
	cfg.OTLPEndpoint = tc.OTLPEndpoint
	cfg.OTLPInsecure = tc.OTLPInsecure
	cfg.MetricsFile = tc.MetricsFile
	cfg.Writer = stderr
	return cfg.WithEnv()
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ux.IsTerminal(f)
}
