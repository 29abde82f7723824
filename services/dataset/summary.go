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

// Summary describes a dataset's value range and sortedness.
type Summary struct {
	Size int
	Min  int
	Max  int

	// SortedPairs is the percentage of adjacent pairs in non-decreasing
	// order. 100 for datasets with fewer than two values.
	SortedPairs float64
}

// Describe summarizes data. The zero Summary is returned for empty data.
func Describe(data []int) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	s := Summary{Size: len(data), Min: data[0], Max: data[0], SortedPairs: 100}
	ordered := 0
	for i, v := range data {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		if i > 0 && data[i-1] <= v {
			ordered++
		}
	}
	if len(data) > 1 {
		s.SortedPairs = 100 * float64(ordered) / float64(len(data)-1)
	}
	return s
}
