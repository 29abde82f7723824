// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package sorting implements the classical in-place integer sorts measured
// by the benchmark harness.
//
// # Registry
//
//	┌──────────────────┬────────────────┬────────┐
//	│ Name             │ Average        │ Stable │
//	├──────────────────┼────────────────┼────────┤
//	│ bubble_sort      │ O(n^2)         │ yes    │
//	│ selection_sort   │ O(n^2)         │ no     │
//	│ insertion_sort   │ O(n^2)         │ yes    │
//	│ quick_sort       │ O(n log n)     │ no     │
//	│ merge_sort       │ O(n log n)     │ yes    │
//	│ heap_sort        │ O(n log n)     │ no     │
//	│ counting_sort    │ O(n + k)       │ yes    │
//	│ radix_sort       │ O(d * (n + b)) │ yes    │
//	│ bucket_sort      │ O(n + k)       │ no     │
//	└──────────────────┴────────────────┴────────┘
//
// Every sort has the signature func([]int), mutates its argument and
// leaves it as an ascending permutation of the input. Empty and
// single-element slices are no-ops.
//
// # Input domains
//
// Radix sort is defined for non-negative values only and panics with
// ErrNegativeInput otherwise. Counting sort allocates a table spanning
// [min, max]. Algorithm.CheckInput tests both constraints up front so
// a caller can reject a dataset before timing begins.
//
// # Thread Safety
//
// The functions keep no shared state; concurrent calls on distinct
// slices are safe.
package sorting
