// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package telemetry wires the OpenTelemetry SDK for sortbench.
//
// OTel APIs are used directly; backends are chosen by exporter name.
//
// # Traces
//
//   - none: global no-op provider (default)
//   - stdout: pretty-printed spans on stderr
//   - otlp: gRPC to OTLPEndpoint (Jaeger, Tempo, any OTLP collector)
//
// # Metrics
//
//   - none: global no-op provider (default)
//   - stdout: pretty-printed metrics on stderr at shutdown
//   - prometheus: text exposition written to MetricsFile at shutdown, for a
//     node-exporter textfile collector. A one-shot CLI has no endpoint to
//     scrape.
//
// # Usage
//
//	shutdown, err := telemetry.Init(ctx, cfg)
//	if err != nil {
//	    return fmt.Errorf("init telemetry: %w", err)
//	}
//	defer shutdown(context.Background())
package telemetry
