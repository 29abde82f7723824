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

// Bubble sorts data with adjacent swaps.
//
// Each pass bubbles the largest remaining element to the end of the
// unsorted region, which then shrinks by one. A pass without swaps ends
// the sort early, so sorted input costs a single O(n) pass.
func Bubble(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts data by repeatedly swapping the minimum of the
// unprocessed suffix into place. Always O(n^2) comparisons.
func Selection(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
		}
	}
}

// Insertion sorts data by growing a sorted prefix, shifting larger
// elements right to open a slot for each new key.
func Insertion(data []int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
