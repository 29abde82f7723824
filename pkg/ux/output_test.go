// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIcon_Render(t *testing.T) {
	tests := []struct {
		icon Icon
		want string
	}{
		{IconSuccess, "✓"},
		{IconWarning, "⚠"},
		{IconError, "✗"},
		{IconArrow, "→"},
		{IconBullet, "•"},
	}
	for _, tt := range tests {
		t.Run(string(tt.icon), func(t *testing.T) {
			if got := tt.icon.Render(); !strings.Contains(got, tt.want) {
				t.Errorf("Render() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file should not be a terminal")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file should not be a terminal")
	}
}

func TestWriters(t *testing.T) {
	var buf bytes.Buffer
	Title(&buf, "Benchmark Summary")
	Success(&buf, "report written")
	Warning(&buf, "fallback used")
	KeyValue(&buf, "Size", 1000)
	Box(&buf, "Dataset", "uniform")

	out := buf.String()
	for _, want := range []string{"Benchmark Summary", "report written", "fallback used", "Size:", "1000", "Dataset", "uniform"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTable(t *testing.T) {
	out := Table(
		[]string{"Algorithm", "Mean"},
		[][]string{{"quick_sort", "0.001"}, {"bubble_sort", "0.500"}},
		0,
	)
	for _, want := range []string{"Algorithm", "Mean", "quick_sort", "bubble_sort", "0.500"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got < 4 {
		t.Errorf("expected a bordered multi-line table, got %d lines:\n%s", got+1, out)
	}
}
