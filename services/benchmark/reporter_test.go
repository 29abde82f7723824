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
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AleutianAI/sortbench/pkg/logging"
)

func createTestReport() Report {
	return Report{
		entryOf("heap_sort", 0.020, 0.022, 0.018),
		entryOf("quick_sort", 0.010, 0.011, 0.009),
	}
}

func TestNewConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf, true)

	if reporter == nil {
		t.Fatal("NewConsoleReporter returned nil")
	}
	if reporter.out != &buf {
		t.Error("Reporter output not set correctly")
	}
	if reporter.verbose != true {
		t.Error("Reporter verbose not set correctly")
	}
}

func TestConsoleReporter_Report(t *testing.T) {
	t.Run("basic report", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewConsoleReporter(&buf, false).Report(createTestReport()); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"Benchmark Summary", "quick_sort", "heap_sort", "Median", "fastest: quick_sort", "2.00x"} {
			if !strings.Contains(output, want) {
				t.Errorf("Output should contain %q:\n%s", want, output)
			}
		}
		if strings.Contains(output, "P90") {
			t.Error("Output should not contain P90 without verbose")
		}
		if strings.Index(output, "quick_sort") > strings.Index(output, "heap_sort") {
			t.Error("fastest algorithm should be listed first")
		}
	})

	t.Run("verbose report", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewConsoleReporter(&buf, true).Report(createTestReport()); err != nil {
			t.Fatalf("Report failed: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "P90") {
			t.Error("Verbose output should contain P90")
		}
		if !strings.Contains(output, "vs heap_sort") {
			t.Error("Verbose output should contain the runner-up comparison")
		}
		for _, want := range []string{"Welch t-test", "Cohen's d", "╭"} {
			if !strings.Contains(output, want) {
				t.Errorf("Verbose comparison box missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("empty report", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewConsoleReporter(&buf, false).Report(nil); err != nil {
			t.Fatalf("Report failed: %v", err)
		}
		if !strings.Contains(buf.String(), "no benchmark results") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

func TestJSONReporter_Report(t *testing.T) {
	t.Run("field names and indentation", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewJSONReporter(&buf).Report(createTestReport()); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		var parsed []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("Failed to parse JSON: %v", err)
		}
		if len(parsed) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(parsed))
		}
		for _, key := range []string{"algorithm", "runs", "times", "average_time", "min_time", "max_time", "std_deviation"} {
			if _, ok := parsed[0][key]; !ok {
				t.Errorf("entry missing key %q", key)
			}
		}
		if !strings.Contains(buf.String(), "\n    {") {
			t.Errorf("expected four-space indentation:\n%s", buf.String())
		}
	})

	t.Run("nil report is an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewJSONReporter(&buf).Report(nil); err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("got %q, want []", buf.String())
		}
	})
}

func TestWriteReport(t *testing.T) {
	t.Run("primary path with nested directory", func(t *testing.T) {
		dir := t.TempDir()
		primary := filepath.Join(dir, "resources", "results", "results_go.json")

		path, err := WriteReport(createTestReport(), primary, filepath.Join(dir, "fallback.json"), nil)
		if err != nil {
			t.Fatal(err)
		}
		if path != primary {
			t.Errorf("wrote %s, want %s", path, primary)
		}

		got, err := ReadReport(primary)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].Algorithm != "heap_sort" || got[1].Runs != 3 {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("falls back when primary is unwritable", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("file, not dir"), 0644); err != nil {
			t.Fatal(err)
		}
		primary := filepath.Join(blocker, "results_go.json")
		fallback := filepath.Join(dir, "results_go.json")

		var logs bytes.Buffer
		logger := logging.New(logging.Config{Output: &logs})

		path, err := WriteReport(createTestReport(), primary, fallback, logger)
		if err != nil {
			t.Fatal(err)
		}
		if path != fallback {
			t.Errorf("wrote %s, want fallback %s", path, fallback)
		}
		if _, err := os.Stat(fallback); err != nil {
			t.Errorf("fallback not written: %v", err)
		}
		if !strings.Contains(logs.String(), "using fallback path") {
			t.Errorf("expected fallback warning, got %q", logs.String())
		}
	})

	t.Run("fails when every path is unwritable", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, nil, 0644); err != nil {
			t.Fatal(err)
		}
		_, err := WriteReport(createTestReport(),
			filepath.Join(blocker, "a.json"),
			filepath.Join(blocker, "b.json"),
			nil,
		)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestReadReport_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadReport(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadReport(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0s"},
		{0.0000125, "12.5µs"},
		{0.0123, "12.300ms"},
		{2.5, "2.500s"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
