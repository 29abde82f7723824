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
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistribution(t *testing.T) {
	for _, d := range Distributions() {
		got, err := ParseDistribution(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDistribution(" Normal ")
	require.NoError(t, err)
	assert.Equal(t, Normal, got)

	_, err = ParseDistribution("poisson")
	assert.ErrorIs(t, err, ErrUnknownDistribution)
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
		message string
	}{
		{"minimal", Spec{Size: 1, Distribution: Uniform, Perturbation: 0}, false, ""},
		{"maximal", Spec{Size: MaxSize, Distribution: Beta, Perturbation: 1}, false, ""},
		{"zero size", Spec{Size: 0, Distribution: Uniform, Perturbation: 0.5}, true, "size must be between 1 and 500000"},
		{"too large", Spec{Size: MaxSize + 1, Distribution: Uniform, Perturbation: 0.5}, true, "size"},
		{"negative perturbation", Spec{Size: 10, Distribution: Uniform, Perturbation: -0.1}, true, "perturbation must be between 0.0 and 1.0"},
		{"perturbation above one", Spec{Size: 10, Distribution: Normal, Perturbation: 1.5}, true, "perturbation"},
		{"NaN perturbation", Spec{Size: 10, Distribution: Normal, Perturbation: math.NaN()}, true, "perturbation"},
		{"unknown distribution", Spec{Size: 10, Distribution: "poisson", Perturbation: 0.5}, true, "distribution must be one of"},
		{"missing distribution", Spec{Size: 10, Perturbation: 0.5}, true, "distribution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSpec)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSpec_SortedCount(t *testing.T) {
	assert.Equal(t, 10, Spec{Size: 10, Perturbation: 0}.SortedCount())
	assert.Equal(t, 0, Spec{Size: 10, Perturbation: 1}.SortedCount())
	assert.Equal(t, 5, Spec{Size: 10, Perturbation: 0.5}.SortedCount())
	assert.Equal(t, 3, Spec{Size: 7, Perturbation: 0.5}.SortedCount())
}

func TestGenerator_Generate_RangeAndPrefix(t *testing.T) {
	for _, d := range Distributions() {
		for _, p := range []float64{0, 0.1, 0.5, 1} {
			spec := Spec{Size: 2000, Distribution: d, Perturbation: p}
			t.Run(string(d), func(t *testing.T) {
				data, err := NewGenerator(WithSeed(99)).Generate(spec)
				require.NoError(t, err)
				require.Len(t, data, spec.Size)

				for i, v := range data {
					require.GreaterOrEqual(t, v, 1, "index %d", i)
					require.LessOrEqual(t, v, spec.Size, "index %d", i)
				}
				assert.True(t, slices.IsSorted(data[:spec.SortedCount()]), "prefix of %d must be sorted (p=%v)", spec.SortedCount(), p)
			})
		}
	}
}

func TestGenerator_Generate_FullySortedAtZero(t *testing.T) {
	data, err := NewGenerator(WithSeed(1)).Generate(Spec{Size: 1000, Distribution: Exponential, Perturbation: 0})
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(data))
}

func TestGenerator_Generate_SizeOne(t *testing.T) {
	for _, d := range Distributions() {
		data, err := NewGenerator().Generate(Spec{Size: 1, Distribution: d, Perturbation: 1})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, data)
	}
}

func TestGenerator_Generate_InvalidSpec(t *testing.T) {
	data, err := NewGenerator().Generate(Spec{Size: 0, Distribution: Uniform})
	assert.ErrorIs(t, err, ErrInvalidSpec)
	assert.Nil(t, data)
}

func TestGenerator_Deterministic(t *testing.T) {
	spec := Spec{Size: 500, Distribution: Normal, Perturbation: 0.3}
	a, err := NewGenerator(WithSeed(42)).Generate(spec)
	require.NoError(t, err)
	b, err := NewGenerator(WithSeed(42)).Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewGenerator(WithSeed(43)).Generate(spec)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerator_NormalShape(t *testing.T) {
	spec := Spec{Size: 100000, Distribution: Normal, Perturbation: 1}
	data, err := NewGenerator(WithSeed(7)).Generate(spec)
	require.NoError(t, err)

	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	mean := sum / float64(len(data)) / float64(spec.Size)
	assert.InDelta(t, 0.5, mean, 0.02, "normal samples centre on half the range")
}

func TestGenerator_ExponentialAndBetaSkew(t *testing.T) {
	meanOf := func(d Distribution) float64 {
		data, err := NewGenerator(WithSeed(3)).Generate(Spec{Size: 50000, Distribution: d, Perturbation: 1})
		require.NoError(t, err)
		var sum float64
		for _, v := range data {
			sum += float64(v)
		}
		return sum / float64(len(data)) / 50000
	}

	// 1 - e^(-x) with x ~ Exp(2) is Beta(1, 2): mean 1/3.
	assert.InDelta(t, 1.0/3.0, meanOf(Exponential), 0.02)
	// x/(x+y) with x = u^(1/2), y = u^(1/5) leans towards y, below one half.
	assert.Less(t, meanOf(Beta), 0.5)
	assert.InDelta(t, 0.5, meanOf(Uniform), 0.02)
}

func TestGenerator_SpareIsPerInstance(t *testing.T) {
	g1 := NewGenerator(WithSeed(5))
	g2 := NewGenerator(WithSeed(5))

	// Priming g1's spare must not leak into g2.
	g1.sample(Normal)
	require.True(t, g1.hasSpare)
	assert.False(t, g2.hasSpare)

	g1.sample(Normal)
	assert.False(t, g1.hasSpare, "second normal draw consumes the spare")
}

func TestGenerator_ConcurrentInstances(t *testing.T) {
	spec := Spec{Size: 1000, Distribution: Normal, Perturbation: 0.5}
	want, err := NewGenerator(WithSeed(11)).Generate(spec)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = NewGenerator(WithSeed(11)).Generate(spec)
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}

func TestToRange(t *testing.T) {
	tests := []struct {
		v    float64
		size int
		want int
	}{
		{0, 10, 1},
		{1, 10, 10},
		{0.5, 11, 6},
		{-3, 10, 1},
		{7, 10, 10},
		{math.NaN(), 10, 1},
		{0.9, 1, 1},
		{0.9, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toRange(tt.v, tt.size), "toRange(%v, %d)", tt.v, tt.size)
	}
}

func TestNormal_DegenerateUniform(t *testing.T) {
	g := NewGenerator(WithSeed(1))
	v := g.normal(0, 0.25)
	assert.False(t, math.IsNaN(v))
	assert.False(t, math.IsInf(v, 0))
}
