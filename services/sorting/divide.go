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

import "cmp"

// -----------------------------------------------------------------------------
// Quick sort
// -----------------------------------------------------------------------------

// Quick sorts data with Lomuto partitioning around the last element.
//
// Description:
//
//	The pivot is always data[high], so already-sorted and reverse-sorted
//	inputs degrade to O(n^2) time. Recursion descends into the smaller
//	partition and iterates over the larger one, keeping stack depth at
//	O(log n) even in that worst case. Runs of equal keys terminate because
//	every partition step fixes the pivot in its final slot.
func Quick(data []int) {
	quick(data, 0, len(data)-1)
}

func quick(data []int, low, high int) {
	for low < high {
		p := partition(data, low, high)
		if p-low < high-p {
			quick(data, low, p-1)
			low = p + 1
		} else {
			quick(data, p+1, high)
			high = p - 1
		}
	}
}

// partition places data[high] at its sorted position within [low, high]
// and returns that index. Elements strictly less than the pivot end up
// to its left.
func partition(data []int, low, high int) int {
	pivot := data[high]
	i := low
	for j := low; j < high; j++ {
		if data[j] < pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[high] = data[high], data[i]
	return i
}

// -----------------------------------------------------------------------------
// Merge sort
// -----------------------------------------------------------------------------

// Merge sorts data with top-down merge sort.
//
// The merge takes from the left run on ties, so the sort is stable. One
// auxiliary buffer of len(data) is shared by every merge step.
func Merge(data []int) {
	mergeSortFunc(data, cmp.Compare[int])
}

// mergeSortFunc is the element-agnostic merge sort behind Merge. Keeping
// it generic lets stability be checked with tagged records.
func mergeSortFunc[T any](data []T, compare func(a, b T) int) {
	if len(data) < 2 {
		return
	}
	buf := make([]T, len(data))
	mergeSort(data, buf, 0, len(data)-1, compare)
}

func mergeSort[T any](data, buf []T, left, right int, compare func(a, b T) int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(data, buf, left, mid, compare)
	mergeSort(data, buf, mid+1, right, compare)
	merge(data, buf, left, mid, right, compare)
}

func merge[T any](data, buf []T, left, mid, right int, compare func(a, b T) int) {
	copy(buf[left:right+1], data[left:right+1])
	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		if compare(buf[i], buf[j]) <= 0 {
			data[k] = buf[i]
			i++
		} else {
			data[k] = buf[j]
			j++
		}
		k++
	}
	k += copy(data[k:right+1], buf[i:mid+1])
	copy(data[k:right+1], buf[j:right+1])
}

// -----------------------------------------------------------------------------
// Heap sort
// -----------------------------------------------------------------------------

// Heap sorts data by building a max-heap, then repeatedly swapping the
// root to the end of a shrinking heap prefix and restoring the heap.
func Heap(data []int) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, n, i)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, end, 0)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root
// within data[:n].
func siftDown(data []int, n, root int) {
	for {
		largest := root
		left := 2*root + 1
		right := left + 1
		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}
		if largest == root {
			return
		}
		data[root], data[largest] = data[largest], data[root]
		root = largest
	}
}
