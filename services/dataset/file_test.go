// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dataset

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
	}{
		{"one per line", "5\n3\n1\n4\n2\n", []int{5, 3, 1, 4, 2}},
		{"mixed whitespace", "  5 3\t1\r\n4\n\n2", []int{5, 3, 1, 4, 2}},
		{"negatives", "-3 0 +7", []int{-3, 0, 7}},
		{"single", "42", []int{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeTemp(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed token", func(t *testing.T) {
		path := writeTemp(t, "1\n2\nthree\n4\n")
		data, err := Load(path)
		assert.ErrorIs(t, err, ErrMalformedToken)
		assert.Contains(t, err.Error(), `"three"`)
		assert.Contains(t, err.Error(), "position 3")
		assert.Contains(t, err.Error(), path)
		assert.Nil(t, data)
	})

	t.Run("float token", func(t *testing.T) {
		_, err := Load(writeTemp(t, "1 2.5"))
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Load(writeTemp(t, ""))
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("whitespace only", func(t *testing.T) {
		_, err := Load(writeTemp(t, " \n\t\n"))
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("too many values", func(t *testing.T) {
		_, err := Read(strings.NewReader(strings.Repeat("1\n", MaxSize+1)))
		assert.ErrorIs(t, err, ErrDatasetTooLarge)
	})
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	data := []int{10, -2, 0, 7, 7}

	require.NoError(t, Save(path, data))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "10\n-2\n0\n7\n7\n", string(content))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSave_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	path := filepath.Join(blocker, "out.txt")
	err := Save(path, []int{1})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.Error(t, statErr, "no file may be produced")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, Summary{}, Describe(nil))

	s := Describe([]int{7})
	assert.Equal(t, Summary{Size: 1, Min: 7, Max: 7, SortedPairs: 100}, s)

	s = Describe([]int{1, 2, 2, 5, 3})
	assert.Equal(t, 5, s.Size)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 5, s.Max)
	assert.InDelta(t, 75.0, s.SortedPairs, 1e-9)
}
