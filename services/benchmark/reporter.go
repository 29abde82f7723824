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
	"fmt"
	"io"
	"slices"

	"github.com/AleutianAI/sortbench/pkg/cli"
	"github.com/AleutianAI/sortbench/pkg/ux"
)

// Reporter presents a finished report.
type Reporter interface {
	Report(r Report) error
}

// -----------------------------------------------------------------------------
// JSON
// -----------------------------------------------------------------------------

// JSONReporter writes the report as an indented JSON array.
//
// Thread Safety: Not safe for concurrent use of the same writer.
type JSONReporter struct {
	out    io.Writer
	indent string
}

// NewJSONReporter creates a reporter writing four-space indented JSON.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out, indent: "    "}
}

// Report encodes r. A nil report is written as an empty array.
func (j *JSONReporter) Report(r Report) error {
	if r == nil {
		r = Report{}
	}
	if err := cli.WriteJSON(j.out, r, j.indent); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Console
// -----------------------------------------------------------------------------

// ConsoleReporter renders a styled summary table for humans.
//
// The table lists entries fastest first with median and relative speed;
// verbose mode adds the p90 column and the significance test between the
// two fastest algorithms.
type ConsoleReporter struct {
	out     io.Writer
	verbose bool
}

// NewConsoleReporter creates a console reporter.
func NewConsoleReporter(out io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, verbose: verbose}
}

// Report renders r.
func (c *ConsoleReporter) Report(r Report) error {
	if len(r) == 0 {
		ux.Warning(c.out, "no benchmark results")
		return nil
	}

	cmp := Compare(r)
	ranked := make([]Entry, 0, len(r))
	for _, name := range cmp.Ranking {
		e, _ := r.Find(name)
		ranked = append(ranked, e)
	}

	headers := []string{"Algorithm", "Runs", "Mean", "Median", "Min", "Max", "Std Dev", "Relative"}
	if c.verbose {
		headers = slices.Insert(headers, 4, "P90")
	}

	rows := make([][]string, 0, len(ranked))
	for _, e := range ranked {
		q := e.Quantiles()
		row := []string{
			e.Algorithm,
			fmt.Sprintf("%d", e.Runs),
			formatSeconds(e.AverageTime),
			formatSeconds(q.Median),
			formatSeconds(e.MinTime),
			formatSeconds(e.MaxTime),
			formatSeconds(e.StdDeviation),
			fmt.Sprintf("%.2fx", cmp.Relative(r, e.Algorithm)),
		}
		if c.verbose {
			row = slices.Insert(row, 4, formatSeconds(q.P90))
		}
		rows = append(rows, row)
	}

	ux.Title(c.out, "Benchmark Summary")
	fmt.Fprintln(c.out, ux.Table(headers, rows, 0))
	ux.Success(c.out, fmt.Sprintf("fastest: %s", cmp.Winner))
	if len(ranked) > 1 {
		ux.KeyValue(c.out, "Speedup", fmt.Sprintf("%.2fx (slowest / fastest)", cmp.Speedup))
	}

	if c.verbose && cmp.RunnerUp != "" {
		verdict := "not significant"
		if cmp.Significant {
			verdict = "significant"
		}
		ux.Box(c.out, fmt.Sprintf("%s vs %s", cmp.Winner, cmp.RunnerUp), fmt.Sprintf(
			"Welch t-test  p=%.4f (%s)\nCohen's d     %.2f (%s)",
			cmp.PValue, verdict, cmp.EffectSize, cmp.EffectSizeCategory))
	}
	return nil
}

// formatSeconds picks a unit so small timings stay readable.
func formatSeconds(s float64) string {
	switch {
	case s == 0:
		return "0s"
	case s < 1e-3:
		return fmt.Sprintf("%.1fµs", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.3fms", s*1e3)
	default:
		return fmt.Sprintf("%.3fs", s)
	}
}

var (
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*ConsoleReporter)(nil)
)
