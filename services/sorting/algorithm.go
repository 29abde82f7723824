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
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrUnknownAlgorithm indicates an algorithm name outside the registry.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrNoAlgorithms indicates an empty algorithm selection.
	ErrNoAlgorithms = errors.New("no algorithms selected")

	// ErrNegativeInput indicates a negative value handed to radix sort.
	ErrNegativeInput = errors.New("radix sort requires non-negative values")

	// ErrRangeTooLarge indicates a value range too wide for counting sort.
	ErrRangeTooLarge = errors.New("value range too large for counting sort")
)

// MaxCountingRange bounds the frequency table counting sort will allocate.
const MaxCountingRange = 1 << 26

// -----------------------------------------------------------------------------
// Algorithm
// -----------------------------------------------------------------------------

// Algorithm identifies one of the nine registered sorting algorithms.
//
// The set is closed: every value below algorithmCount dispatches to a sort
// function, and names outside the set are rejected by ParseAlgorithm.
type Algorithm int

const (
	BubbleSort Algorithm = iota
	SelectionSort
	InsertionSort
	QuickSort
	MergeSort
	HeapSort
	CountingSort
	RadixSort
	BucketSort

	algorithmCount
)

// Func is an in-place sort over a slice of integers.
type Func func(data []int)

var names = [algorithmCount]string{
	BubbleSort:    "bubble_sort",
	SelectionSort: "selection_sort",
	InsertionSort: "insertion_sort",
	QuickSort:     "quick_sort",
	MergeSort:     "merge_sort",
	HeapSort:      "heap_sort",
	CountingSort:  "counting_sort",
	RadixSort:     "radix_sort",
	BucketSort:    "bucket_sort",
}

// All returns every registered algorithm in declaration order.
func All() []Algorithm {
	all := make([]Algorithm, 0, algorithmCount)
	for a := Algorithm(0); a < algorithmCount; a++ {
		all = append(all, a)
	}
	return all
}

// Names returns the command-line names of every registered algorithm.
func Names() []string {
	out := make([]string, 0, algorithmCount)
	for _, a := range All() {
		out = append(out, a.String())
	}
	return out
}

// String returns the command-line name, e.g. "quick_sort".
func (a Algorithm) String() string {
	if a.valid() {
		return names[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) valid() bool {
	return a >= 0 && a < algorithmCount
}

// Func returns the sort function for the algorithm.
//
// Panics on a value outside the registry; such values can only be made by
// converting an arbitrary integer.
func (a Algorithm) Func() Func {
	switch a {
	case BubbleSort:
		return Bubble
	case SelectionSort:
		return Selection
	case InsertionSort:
		return Insertion
	case QuickSort:
		return Quick
	case MergeSort:
		return Merge
	case HeapSort:
		return Heap
	case CountingSort:
		return Counting
	case RadixSort:
		return Radix
	case BucketSort:
		return Bucket
	}
	panic(fmt.Sprintf("sorting: no implementation for %s", a))
}

// Sort sorts data in place with the algorithm.
func (a Algorithm) Sort(data []int) {
	a.Func()(data)
}

// Complexity returns the average-case time complexity in big-O notation.
func (a Algorithm) Complexity() string {
	switch a {
	case BubbleSort, SelectionSort, InsertionSort:
		return "O(n^2)"
	case QuickSort, MergeSort, HeapSort:
		return "O(n log n)"
	case CountingSort:
		return "O(n + k)"
	case RadixSort:
		return "O(d * (n + b))"
	case BucketSort:
		return "O(n + k)"
	}
	return "unknown"
}

// Stable reports whether equal elements keep their relative order.
func (a Algorithm) Stable() bool {
	switch a {
	case BubbleSort, InsertionSort, MergeSort, CountingSort, RadixSort:
		return true
	}
	return false
}

// CheckInput reports whether data is inside the algorithm's domain.
//
// Description:
//
//	Radix sort only accepts non-negative values and counting sort refuses
//	value ranges wider than MaxCountingRange. Every other algorithm accepts
//	any input. Callers check once per dataset before timing anything.
//
// Outputs:
//
//	error - Wraps ErrNegativeInput or ErrRangeTooLarge, nil otherwise.
func (a Algorithm) CheckInput(data []int) error {
	switch a {
	case RadixSort:
		for i, v := range data {
			if v < 0 {
				return fmt.Errorf("%w: value %d at index %d", ErrNegativeInput, v, i)
			}
		}
	case CountingSort:
		if len(data) == 0 {
			return nil
		}
		lo, hi := bounds(data)
		// Computed in uint64 so extreme bounds cannot overflow.
		if span := uint64(hi) - uint64(lo); span >= MaxCountingRange {
			return fmt.Errorf("%w: [%d, %d]", ErrRangeTooLarge, lo, hi)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Parsing
// -----------------------------------------------------------------------------

// ParseAlgorithm resolves a command-line name to an Algorithm.
//
// Matching is exact after trimming surrounding whitespace.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	for a, n := range names {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// ParseAlgorithms resolves a comma-separated list of names.
//
// Description:
//
//	Every token must name a registered algorithm; one unknown token fails
//	the whole list. Empty tokens are skipped, and repeated names collapse
//	to their first occurrence.
//
// Inputs:
//
//	list - e.g. "quick_sort, merge_sort,heap_sort".
//
// Outputs:
//
//	[]Algorithm - Distinct algorithms in first-occurrence order.
//	error - ErrUnknownAlgorithm or ErrNoAlgorithms.
func ParseAlgorithms(list string) ([]Algorithm, error) {
	var out []Algorithm
	seen := make(map[Algorithm]bool)
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		a, err := ParseAlgorithm(token)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, ErrNoAlgorithms
	}
	return out, nil
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}

func bounds(data []int) (lo, hi int) {
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
