// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sorting

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

func randomInts(seed uint64, n, lo, hi int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.IntN(hi-lo+1)
	}
	return out
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

type fixture struct {
	name string
	data []int
}

func fixtures(large int) []fixture {
	return []fixture{
		{"empty", []int{}},
		{"single", []int{42}},
		{"pair reversed", []int{2, 1}},
		{"all equal", []int{7, 7, 7, 7, 7, 7}},
		{"duplicates", []int{3, 1, 3, 2, 1, 3, 2, 2}},
		{"sorted", ascending(257)},
		{"reverse", descending(257)},
		{"five values", []int{5, 3, 1, 4, 2}},
		{"random small", randomInts(1, 100, 1, 100)},
		{"random large", randomInts(2, large, 1, large)},
		{"few distinct", randomInts(3, large, 1, 4)},
	}
}

// -----------------------------------------------------------------------------
// Sorted permutation oracle
// -----------------------------------------------------------------------------

func TestAlgorithms_SortedPermutation(t *testing.T) {
	for _, a := range All() {
		large := 20000
		if a.Complexity() == "O(n^2)" {
			large = 2000
		}
		for _, fx := range fixtures(large) {
			t.Run(a.String()+"/"+fx.name, func(t *testing.T) {
				input := slices.Clone(fx.data)
				want := slices.Clone(fx.data)
				slices.Sort(want)

				a.Sort(input)

				assert.Equal(t, want, input)
			})
		}
	}
}

func TestAlgorithms_Idempotent(t *testing.T) {
	for _, a := range All() {
		t.Run(a.String(), func(t *testing.T) {
			data := randomInts(11, 500, 1, 50)
			a.Sort(data)
			once := slices.Clone(data)
			a.Sort(data)
			assert.Equal(t, once, data)
		})
	}
}

func TestAlgorithms_NegativeValues(t *testing.T) {
	input := []int{3, -1, 0, -7, 12, -1, 5}
	want := []int{-7, -1, -1, 0, 3, 5, 12}

	for _, a := range All() {
		if a == RadixSort {
			continue
		}
		t.Run(a.String(), func(t *testing.T) {
			data := slices.Clone(input)
			a.Sort(data)
			assert.Equal(t, want, data)
		})
	}
}

func TestCounting_NegativeRange(t *testing.T) {
	data := []int{-3, -1, -2}
	Counting(data)
	assert.Equal(t, []int{-3, -2, -1}, data)
}

func TestQuick_LargeSortedInputDoesNotOverflowStack(t *testing.T) {
	data := ascending(20000)
	Quick(data)
	assert.True(t, IsSorted(data))

	data = descending(20000)
	Quick(data)
	assert.True(t, IsSorted(data))
}

func TestQuick_DuplicateHeavy(t *testing.T) {
	data := make([]int, 10000)
	for i := range data {
		data[i] = 5
	}
	data[0] = 9
	Quick(data)
	assert.True(t, IsSorted(data))
	assert.Equal(t, 9, data[len(data)-1])
}

func TestBucket_AllNegative(t *testing.T) {
	data := []int{-5, -50, -1, -20, -3}
	Bucket(data)
	assert.Equal(t, []int{-50, -20, -5, -3, -1}, data)
}

func TestBucket_ExtremeTopValueClamped(t *testing.T) {
	data := []int{1, 1000000, 2, 999999, 3}
	Bucket(data)
	assert.Equal(t, []int{1, 2, 3, 999999, 1000000}, data)
}

func TestRadix_LargeValues(t *testing.T) {
	data := []int{math.MaxInt, 0, 10, math.MaxInt - 1, 1}
	Radix(data)
	assert.Equal(t, []int{0, 1, 10, math.MaxInt - 1, math.MaxInt}, data)
}

// -----------------------------------------------------------------------------
// Stability
// -----------------------------------------------------------------------------

type record struct {
	key int
	tag int
}

func TestMerge_Stable(t *testing.T) {
	keys := randomInts(5, 1000, 1, 10)
	records := make([]record, len(keys))
	for i, k := range keys {
		records[i] = record{key: k, tag: i}
	}

	mergeSortFunc(records, func(a, b record) int { return a.key - b.key })

	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		require.LessOrEqual(t, prev.key, cur.key)
		if prev.key == cur.key {
			require.Less(t, prev.tag, cur.tag, "equal keys reordered at %d", i)
		}
	}
}

// -----------------------------------------------------------------------------
// Input domains
// -----------------------------------------------------------------------------

func TestRadix_PanicsOnNegative(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNegativeInput))
	}()
	Radix([]int{3, -1, 2})
}

func TestCheckInput(t *testing.T) {
	tests := []struct {
		name    string
		alg     Algorithm
		data    []int
		wantErr error
	}{
		{"radix non-negative", RadixSort, []int{0, 5, 3}, nil},
		{"radix negative", RadixSort, []int{4, -2}, ErrNegativeInput},
		{"counting narrow", CountingSort, []int{-10, 10}, nil},
		{"counting wide", CountingSort, []int{0, MaxCountingRange}, ErrRangeTooLarge},
		{"counting extreme", CountingSort, []int{math.MinInt, math.MaxInt}, ErrRangeTooLarge},
		{"counting empty", CountingSort, nil, nil},
		{"quick anything", QuickSort, []int{math.MinInt, math.MaxInt}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.alg.CheckInput(tt.data)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

func TestRegistry_Exhaustive(t *testing.T) {
	all := All()
	require.Len(t, all, 9)
	for _, a := range all {
		assert.NotNil(t, a.Func(), a.String())
		assert.NotEqual(t, "unknown", a.Complexity(), a.String())

		parsed, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestAlgorithm_FuncPanicsOutsideRegistry(t *testing.T) {
	assert.Panics(t, func() { Algorithm(99).Func() })
	assert.Equal(t, "Algorithm(99)", Algorithm(99).String())
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("  heap_sort ")
	require.NoError(t, err)
	assert.Equal(t, HeapSort, a)

	_, err = ParseAlgorithm("bogo_sort")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "bogo_sort")

	_, err = ParseAlgorithm("Quick_Sort")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestParseAlgorithms(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Algorithm
		wantErr error
	}{
		{"single", "quick_sort", []Algorithm{QuickSort}, nil},
		{"spaced list", "merge_sort, heap_sort ,bubble_sort", []Algorithm{MergeSort, HeapSort, BubbleSort}, nil},
		{"duplicates collapse", "heap_sort,quick_sort,heap_sort", []Algorithm{HeapSort, QuickSort}, nil},
		{"empty tokens skipped", "radix_sort,,", []Algorithm{RadixSort}, nil},
		{"unknown fails whole list", "quick_sort,bogo_sort", nil, ErrUnknownAlgorithm},
		{"empty", "", nil, ErrNoAlgorithms},
		{"only commas", " , ,", nil, ErrNoAlgorithms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithms(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStable(t *testing.T) {
	assert.True(t, MergeSort.Stable())
	assert.False(t, QuickSort.Stable())
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]int{1, 1, 2}))
	assert.False(t, IsSorted([]int{2, 1}))
}

// -----------------------------------------------------------------------------
// Benchmarks
// -----------------------------------------------------------------------------

func BenchmarkAlgorithms(b *testing.B) {
	base := randomInts(42, 5000, 1, 5000)
	for _, a := range All() {
		b.Run(a.String(), func(b *testing.B) {
			data := make([]int, len(base))
			for i := 0; i < b.N; i++ {
				copy(data, base)
				a.Sort(data)
			}
		})
	}
}
