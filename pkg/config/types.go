// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import "path/filepath"

// Config is the sortbench.yaml file. Command-line flags override it.
type Config struct {
	// Harness: how benchmarks run and where reports go
	Harness HarnessConfig `yaml:"harness"`

	// Generator: datagen defaults
	Generator GeneratorConfig `yaml:"generator"`

	Logging LoggingConfig `yaml:"logging"`

	// Telemetry: OpenTelemetry exporters, all off by default
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type HarnessConfig struct {
	Runs         int    `yaml:"runs" validate:"min=1"`         // timed runs per algorithm
	Warmup       int    `yaml:"warmup" validate:"min=0"`       // untimed runs before timing
	Parallelism  int    `yaml:"parallelism" validate:"min=0"`  // 0 = one worker per algorithm
	Verify       bool   `yaml:"verify"`                        // check every output is sorted
	ResultsDir   string `yaml:"results_dir" validate:"required"`
	ResultsFile  string `yaml:"results_file" validate:"required"`
	FallbackFile string `yaml:"fallback_file" validate:"required"` // used when ResultsDir is unwritable
}

type GeneratorConfig struct {
	Distribution string  `yaml:"distribution" validate:"oneof=uniform normal exponential beta"`
	Perturbation float64 `yaml:"perturbation" validate:"gte=0,lte=1"`
	Seed         uint64  `yaml:"seed"` // 0 = seeded from the OS
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
	Dir   string `yaml:"dir,omitempty"` // empty disables file logging
}

type TelemetryConfig struct {
	TraceExporter  string `yaml:"trace_exporter" validate:"oneof=none stdout otlp"`
	MetricExporter string `yaml:"metric_exporter" validate:"oneof=none stdout prometheus"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"`
	OTLPInsecure   bool   `yaml:"otlp_insecure"`
	MetricsFile    string `yaml:"metrics_file" validate:"required_if=MetricExporter prometheus"`
}

// ResultsPath is the primary report location.
func (h HarnessConfig) ResultsPath() string {
	return filepath.Join(h.ResultsDir, h.ResultsFile)
}

func DefaultConfig() Config {
	return Config{
		Harness: HarnessConfig{
			Runs:         10,
			Warmup:       0,
			Parallelism:  0,
			Verify:       false,
			ResultsDir:   filepath.Join("..", "..", "resources", "results"),
			ResultsFile:  "results_go.json",
			FallbackFile: "results_go.json",
		},
		Generator: GeneratorConfig{
			Distribution: "uniform",
			Perturbation: 1.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  "none",
			MetricExporter: "none",
			OTLPEndpoint:   "localhost:4317",
			OTLPInsecure:   true,
			MetricsFile:    "sortbench.prom",
		},
	}
}
