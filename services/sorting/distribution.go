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
	"fmt"
	"math"
)

// smallBucket is the bucket length up to which insertion sort is used.
const smallBucket = 32

// Counting sorts data with a frequency table over [min, max].
//
// Offsetting by the minimum lets negative values through. Memory grows
// with max-min; see Algorithm.CheckInput for the enforced bound.
func Counting(data []int) {
	if len(data) < 2 {
		return
	}
	lo, hi := bounds(data)
	counts := make([]int, hi-lo+1)
	for _, v := range data {
		counts[v-lo]++
	}
	k := 0
	for offset, c := range counts {
		for ; c > 0; c-- {
			data[k] = offset + lo
			k++
		}
	}
}

// Radix sorts non-negative data with least-significant-digit radix sort
// in base 10, one stable counting pass per digit of the maximum.
//
// Radix panics with an error wrapping ErrNegativeInput when data holds a
// negative value. Use Algorithm.CheckInput to reject such input first.
func Radix(data []int) {
	if len(data) < 2 {
		return
	}
	maxVal := data[0]
	for i, v := range data {
		if v < 0 {
			panic(fmt.Errorf("%w: value %d at index %d", ErrNegativeInput, v, i))
		}
		if v > maxVal {
			maxVal = v
		}
	}

	buf := make([]int, len(data))
	for exp := 1; maxVal/exp > 0; exp *= 10 {
		digitPass(data, buf, exp)
		if exp > math.MaxInt/10 {
			break
		}
	}
}

// digitPass stably reorders data by the base-10 digit selected by exp.
func digitPass(data, buf []int, exp int) {
	var count [10]int
	for _, v := range data {
		count[(v/exp)%10]++
	}
	for d := 1; d < 10; d++ {
		count[d] += count[d-1]
	}
	for i := len(data) - 1; i >= 0; i-- {
		d := (data[i] / exp) % 10
		count[d]--
		buf[count[d]] = data[i]
	}
	copy(data, buf)
}

// Bucket sorts data by scattering into floor(sqrt(n)) equal-width buckets
// over [0, max+1), sorting each bucket and concatenating them.
//
// Values at or past the top edge land in the last bucket. When data holds
// negative values the range starts at the minimum instead of zero, so the
// bucket index stays monotone in the value and the output stays sorted.
func Bucket(data []int) {
	n := len(data)
	if n < 2 {
		return
	}
	lo, hi := bounds(data)
	if lo > 0 {
		lo = 0
	}
	k := int(math.Sqrt(float64(n)))
	width := float64(hi) + 1 - float64(lo)

	buckets := make([][]int, k)
	for _, v := range data {
		idx := int((float64(v) - float64(lo)) / width * float64(k))
		if idx >= k {
			idx = k - 1
		}
		if idx < 0 {
			idx = 0
		}
		buckets[idx] = append(buckets[idx], v)
	}

	pos := 0
	for _, b := range buckets {
		if len(b) <= smallBucket {
			Insertion(b)
		} else {
			Heap(b)
		}
		pos += copy(data[pos:], b)
	}
}
