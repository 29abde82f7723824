// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted by Config.
const (
	ExporterNone       = "none"
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

var (
	// ErrNilContext is returned when Init is called with a nil context.
	ErrNilContext = errors.New("telemetry: nil context")

	// ErrUnknownExporter is returned for an exporter name Init does not know.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")

	// ErrMissingMetricsFile is returned when the prometheus exporter has
	// nowhere to write its textfile.
	ErrMissingMetricsFile = errors.New("telemetry: prometheus exporter requires a metrics file")
)

// Config controls telemetry behavior.
type Config struct {
	// ServiceName identifies this process in traces and metrics.
	ServiceName string

	// ServiceVersion is the version string reported on the resource.
	ServiceVersion string

	// TraceExporter selects the trace exporter: "otlp", "stdout", or "none".
	TraceExporter string

	// MetricExporter selects the metric exporter: "prometheus", "stdout", or "none".
	MetricExporter string

	// OTLPEndpoint is the OTLP gRPC receiver for traces.
	OTLPEndpoint string

	// OTLPInsecure disables TLS for the OTLP connection.
	OTLPInsecure bool

	// MetricsFile receives the Prometheus text exposition at shutdown.
	// Point it into a node-exporter textfile directory to scrape runs.
	MetricsFile string

	// Writer receives stdout exporter output. Defaults to os.Stderr so the
	// report on stdout stays machine-readable.
	Writer io.Writer
}

// DefaultConfig returns a configuration with every exporter disabled,
// then overlaid with the environment (see WithEnv).
func DefaultConfig() Config {
	return Config{
		ServiceName:    "sortbench",
		ServiceVersion: "1.0.0",
		TraceExporter:  ExporterNone,
		MetricExporter: ExporterNone,
		OTLPEndpoint:   "localhost:4317",
		OTLPInsecure:   true,
		MetricsFile:    "sortbench.prom",
	}.WithEnv()
}

// WithEnv returns c with the standard OTel variables applied over it.
// Unset or empty variables leave the field alone:
//   - OTEL_TRACES_EXPORTER: trace exporter type
//   - OTEL_METRICS_EXPORTER: metric exporter type
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint
func (c Config) WithEnv() Config {
	c.TraceExporter = getEnvOr("OTEL_TRACES_EXPORTER", c.TraceExporter)
	c.MetricExporter = getEnvOr("OTEL_METRICS_EXPORTER", c.MetricExporter)
	c.OTLPEndpoint = getEnvOr("OTEL_EXPORTER_OTLP_ENDPOINT", c.OTLPEndpoint)
	return c
}

// Init initializes the telemetry stack with the given configuration.
//
// Description:
//
//	Sets up the OpenTelemetry TracerProvider and MeterProvider selected by
//	cfg and installs them globally. Instruments obtained earlier through
//	otel.Tracer and otel.Meter start delegating to the new providers.
//	Exporters set to "none" leave the global no-op provider in place.
//
// Inputs:
//
//	ctx - Context for initialization (used for exporter connections).
//	cfg - Telemetry configuration. Use DefaultConfig() for defaults.
//
// Outputs:
//
//	shutdown - Flushes and releases exporters. Must be called.
//	error - Non-nil if an exporter cannot be created.
//
// Example:
//
//	shutdown, err := telemetry.Init(ctx, cfg)
//	if err != nil {
//	    return fmt.Errorf("init telemetry: %w", err)
//	}
//	defer shutdown(context.Background())
//
// Thread Safety: Call once at process startup.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	var shutdownFuncs []func(context.Context) error

	// Cleanups run in registration order.
	shutdown = func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdownFuncs {
			if err := fn(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return fmt.Errorf("shutdown errors: %w", errors.Join(errs...))
		}
		return nil
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	// --- TRACES ---
	if cfg.TraceExporter != ExporterNone && cfg.TraceExporter != "" {
		tp, err := initTracer(ctx, cfg, res)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	}

	// --- METRICS ---
	if cfg.MetricExporter != ExporterNone && cfg.MetricExporter != "" {
		mp, flush, err := initMeter(cfg, res)
		if err != nil {
			_ = shutdown(ctx)
			return nil, fmt.Errorf("init meter: %w", err)
		}
		otel.SetMeterProvider(mp)
		if flush != nil {
			shutdownFuncs = append(shutdownFuncs, flush)
		}
		shutdownFuncs = append(shutdownFuncs, mp.Shutdown)
	}

	return shutdown, nil
}

// initTracer creates and returns a configured TracerProvider.
func initTracer(ctx context.Context, cfg Config, res *resource.Resource) (*trace.TracerProvider, error) {
	var exporter trace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case ExporterOTLP:
		opts := []otlptracegrpc.Option{
			otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exporter, err = otlptracegrpc.New(ctx, opts...)

	case ExporterStdout:
		exporter, err = stdouttrace.New(
			stdouttrace.WithWriter(cfg.Writer),
			stdouttrace.WithPrettyPrint(),
		)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.TraceExporter)
	}

	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	// A benchmark is short-lived; every span is kept.
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.AlwaysSample()),
	), nil
}

// initMeter creates the MeterProvider. The returned flush func, when not
// nil, must run before the provider shuts down.
func initMeter(cfg Config, res *resource.Resource) (*metric.MeterProvider, func(context.Context) error, error) {
	switch cfg.MetricExporter {
	case ExporterPrometheus:
		if cfg.MetricsFile == "" {
			return nil, nil, ErrMissingMetricsFile
		}

		// Private registry: only this run's instruments land in the textfile.
		reg := prometheus.NewRegistry()
		exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
		if err != nil {
			return nil, nil, fmt.Errorf("create prometheus exporter: %w", err)
		}

		mp := metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(exporter),
		)
		flush := func(context.Context) error {
			if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
				return fmt.Errorf("write metrics file %s: %w", cfg.MetricsFile, err)
			}
			return nil
		}
		return mp, flush, nil

	case ExporterStdout:
		exporter, err := stdoutmetric.New(
			stdoutmetric.WithWriter(cfg.Writer),
			stdoutmetric.WithPrettyPrint(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}

		return metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(exporter)),
		), nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.MetricExporter)
	}
}

// getEnvOr returns the environment variable value or the fallback.
func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
