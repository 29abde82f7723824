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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AleutianAI/sortbench/pkg/cli"
	"github.com/AleutianAI/sortbench/pkg/config"
	"github.com/AleutianAI/sortbench/pkg/logging"
	"github.com/AleutianAI/sortbench/pkg/ux"
	"github.com/AleutianAI/sortbench/services/dataset"
)

type genOptions struct {
	size         int
	distribution string
	perturbation float64
	output       string
	seed         uint64
	configPath   string
	logLevel     string
}

const rootLong = `Writes a dataset of integers in [1, size] for sortbench.

Distributions:
  uniform       Uniform distribution (default)
  normal        Normal distribution (mean=0.5, std=0.2)
  exponential   Exponential distribution (lambda=2.0)
  beta          Beta-like skew (alpha=2.0, beta=5.0)

Perturbation:
  0.0           Fully sorted array
  0.1           90% sorted prefix, 10% random
  0.5           50% sorted prefix, 50% random
  1.0           Fully random array`

const rootExample = `  datagen --size 1000 --distribution uniform --perturbation 1.0 --output data.txt
  datagen --size 5000 --distribution normal --perturbation 0.2 --output test_data.txt
  datagen --size 10000 --distribution exponential --perturbation 0.8 --output exp_data.txt --seed 42`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &genOptions{}

	rootCmd := &cobra.Command{
		Use:     "datagen --size <n> --output <path> [--distribution <type>] [--perturbation <p>]",
		Short:   "Generate synthetic datasets for sortbench",
		Long:    rootLong,
		Example: rootExample,
		Args:    cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return runGenerate(cmd, opts, stdout, stderr)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&opts.size, "size", 0, fmt.Sprintf("number of values, 1 to %d (required)", dataset.MaxSize))
	flags.StringVar(&opts.distribution, "distribution", "uniform", "uniform, normal, exponential or beta")
	flags.Float64Var(&opts.perturbation, "perturbation", 1.0, "unsorted fraction, 0.0 (sorted) to 1.0 (random)")
	flags.StringVar(&opts.output, "output", "", "destination file (required)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output (0 = random)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $SORTBENCH_CONFIG or ./sortbench.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	return rootCmd
}

// runGenerate validates everything before touching the output path, so a
// rejected invocation produces no file.
func runGenerate(cmd *cobra.Command, opts *genOptions, stdout, stderr io.Writer) error {
	flags := cmd.Flags()
	if !flags.Changed("size") || opts.output == "" {
		return cli.Usagef("missing required arguments --size and --output")
	}

	cfg, _, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	name := cfg.Generator.Distribution
	if flags.Changed("distribution") {
		name = opts.distribution
	}
	distribution, err := dataset.ParseDistribution(name)
	if err != nil {
		return cli.NewUsageError(err)
	}

	spec := dataset.Spec{
		Size:         opts.size,
		Distribution: distribution,
		Perturbation: cfg.Generator.Perturbation,
	}
	if flags.Changed("perturbation") {
		spec.Perturbation = opts.perturbation
	}
	if err := spec.Validate(); err != nil {
		return cli.NewUsageError(err)
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return cli.NewUsageError(err)
	}
	logger := logging.New(logging.Config{
		Level:   lvl,
		LogDir:  cfg.Logging.Dir,
		Service: "datagen",
		JSON:    cfg.Logging.JSON,
		Output:  stderr,
	})
	defer logger.Close()

	seed := cfg.Generator.Seed
	if flags.Changed("seed") {
		seed = opts.seed
	}
	var genOpts []dataset.GeneratorOption
	if seed != 0 {
		genOpts = append(genOpts, dataset.WithSeed(seed))
	}

	data, err := dataset.NewGenerator(genOpts...).Generate(spec)
	if err != nil {
		return cli.NewUsageError(err)
	}
	logger.Debug("dataset generated", "size", spec.Size, "distribution", spec.Distribution, "seed", seed)

	if err := dataset.Save(opts.output, data); err != nil {
		return fmt.Errorf("could not save data to file: %w", err)
	}
	logger.Info("dataset written", "path", opts.output)

	printSummary(stdout, spec, opts.output, dataset.Describe(data))
	return nil
}

// printSummary writes the human-readable result with grouped digits.
func printSummary(w io.Writer, spec dataset.Spec, output string, s dataset.Summary) {
	p := message.NewPrinter(language.English)

	ux.Success(w, "Data set created successfully!")
	ux.KeyValue(w, "Size", p.Sprintf("%d elements", spec.Size))
	ux.KeyValue(w, "Distribution", spec.Distribution)
	ux.KeyValue(w, "Perturbation level", fmt.Sprintf("%.2f", spec.Perturbation))
	ux.KeyValue(w, "Output file", output)
	ux.KeyValue(w, "Value range", p.Sprintf("[%d, %d]", s.Min, s.Max))
	ux.KeyValue(w, "Sorted pairs", fmt.Sprintf("%.1f%%", s.SortedPairs))
}
