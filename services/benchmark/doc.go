// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package benchmark times sorting algorithms against a shared dataset and
// aggregates the results into a report.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────────────┐
//	│                              Runner                               │
//	├───────────────────────────────────────────────────────────────────┤
//	│  preconditions ──► errgroup (SetLimit) ──► merge + sort by name  │
//	│                        │                                          │
//	│        ┌───────────────┼───────────────┐                          │
//	│        ▼               ▼               ▼                          │
//	│  ┌───────────┐   ┌───────────┐   ┌───────────┐                    │
//	│  │ worker 0  │   │ worker 1  │   │ worker N  │  one per algorithm │
//	│  │ copy+time │   │ copy+time │   │ copy+time │  own buffer        │
//	│  │ entries[0]│   │ entries[1]│   │ entries[N]│  own result slot   │
//	│  └───────────┘   └───────────┘   └───────────┘                    │
//	└───────────────────────────────────────────────────────────────────┘
//	                               │
//	                               ▼
//	       Report ──► JSONReporter (file + stdout) / ConsoleReporter
//
// # Usage
//
//	runner, err := benchmark.NewRunner(&benchmark.Config{Runs: 10}, logger)
//	if err != nil {
//	    return err
//	}
//	report, err := runner.Run(ctx, data, algorithms)
//	if err != nil {
//	    return err
//	}
//	path, err := benchmark.WriteReport(report, "results/results_go.json", "results_go.json", logger)
//
// # Statistics
//
// Each entry carries mean, min, max and population standard deviation
// of its run times in seconds. Compare ranks entries and runs Welch's
// t-test and Cohen's d between the two fastest.
//
// # Telemetry
//
// Runs are traced (one span per benchmark and per algorithm) and
// recorded in the sortbench_run_duration_seconds histogram through the
// global OpenTelemetry providers. Without installed providers both are
// no-ops.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use unless documented otherwise.
package benchmark
