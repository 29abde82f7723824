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
	"io"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/sortbench/pkg/cli"
)

// benchOptions holds the root command's flags.
type benchOptions struct {
	file       string
	algorithms string
	runs       int
	warmup     int
	parallel   int
	verify     bool
	output     string
	configPath string
	logLevel   string
	summary    bool
}

const rootLong = `Times sorting algorithms over a dataset file and writes a JSON report.

The dataset is a text file of whitespace-separated integers. Each algorithm
sorts a fresh copy of it --runs times; the report lists every run time with
mean, min, max and standard deviation in seconds.

The report is written to <results_dir>/<results_file> from the config
(default ../../resources/results/results_go.json), falling back to
./results_go.json, and echoed to stdout.`

const rootExample = `  sortbench --file data.txt --algorithms quick_sort,merge_sort
  sortbench --file data.txt --algorithms bubble_sort --runs 15
  sortbench --file data.txt --algorithms quick_sort,merge_sort,heap_sort --runs 5 --summary
  sortbench list`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &benchOptions{}

	rootCmd := &cobra.Command{
		Use:     "sortbench --file <path> --algorithms <list> [--runs <n>]",
		Short:   "Benchmark sorting algorithms over a dataset file",
		Long:    rootLong,
		Example: rootExample,
		Args:    cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation shows help.
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return runBenchmark(cmd, opts, stdout, stderr)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.file, "file", "", "dataset file of whitespace-separated integers (required)")
	flags.StringVar(&opts.algorithms, "algorithms", "", "comma-separated algorithm names (required), see 'sortbench list'")
	flags.IntVar(&opts.runs, "runs", 10, "timed runs per algorithm, at least 1")
	flags.IntVar(&opts.warmup, "warmup", 0, "untimed runs per algorithm before timing")
	flags.IntVar(&opts.parallel, "parallel", 0, "algorithms benchmarked concurrently (0 = all at once)")
	flags.BoolVar(&opts.verify, "verify", false, "check that every timed run produced sorted output")
	flags.StringVar(&opts.output, "output", "", "report path, overriding the configured results path")
	flags.BoolVar(&opts.summary, "summary", false, "print the styled summary table to stderr even when it is not a terminal")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "config file (default $SORTBENCH_CONFIG or ./sortbench.yaml)")
	persistent.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(newListCmd(stdout))
	rootCmd.AddCommand(newConfigCmd(stdout, opts))

	return rootCmd
}
