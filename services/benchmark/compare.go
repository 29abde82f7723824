// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package benchmark

import (
	"cmp"
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
)

// -----------------------------------------------------------------------------
// Comparison
// -----------------------------------------------------------------------------

// Comparison ranks the entries of a report and tests whether the fastest
// algorithm is significantly faster than the runner-up.
//
// Thread Safety: Safe for concurrent read access after creation.
type Comparison struct {
	// Ranking lists algorithm names from fastest to slowest mean.
	Ranking []string

	// Winner is the fastest algorithm. Empty for an empty report.
	Winner string

	// Speedup is slowest mean / fastest mean. 1 with fewer than two entries
	// or a zero fastest mean.
	Speedup float64

	// RunnerUp is the second fastest algorithm, if any.
	RunnerUp string

	// PValue is Welch's t-test p-value between Winner and RunnerUp.
	PValue float64

	// Significant is PValue < 0.05.
	Significant bool

	// EffectSize is Cohen's d between Winner and RunnerUp.
	EffectSize float64

	// EffectSizeCategory categorizes EffectSize.
	EffectSizeCategory EffectSizeCategory
}

// Relative returns how many times slower the named entry is than the winner.
func (c Comparison) Relative(r Report, name string) float64 {
	winner, ok := r.Find(c.Winner)
	if !ok || winner.AverageTime == 0 {
		return 1
	}
	e, ok := r.Find(name)
	if !ok {
		return 1
	}
	return e.AverageTime / winner.AverageTime
}

// Compare ranks report entries by mean time.
//
// Description:
//
//	Sorts entries by AverageTime (ties broken by name), then compares the
//	two fastest with Welch's t-test and Cohen's d. With a single entry the
//	comparison has a winner but no runner-up and PValue is 1.
//
// Inputs:
//   - r: The report. Not modified.
//
// Outputs:
//   - Comparison: Zero value (Speedup 1, PValue 1) for an empty report.
func Compare(r Report) Comparison {
	c := Comparison{Speedup: 1, PValue: 1}
	if len(r) == 0 {
		return c
	}

	ranked := slices.Clone(r)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		if n := cmp.Compare(a.AverageTime, b.AverageTime); n != 0 {
			return n
		}
		return cmp.Compare(a.Algorithm, b.Algorithm)
	})

	for _, e := range ranked {
		c.Ranking = append(c.Ranking, e.Algorithm)
	}
	fastest, slowest := ranked[0], ranked[len(ranked)-1]
	c.Winner = fastest.Algorithm
	if fastest.AverageTime > 0 {
		c.Speedup = slowest.AverageTime / fastest.AverageTime
	}

	if len(ranked) < 2 {
		return c
	}
	second := ranked[1]
	c.RunnerUp = second.Algorithm
	_, c.PValue = WelchTTest(fastest.Times, second.Times)
	c.Significant = c.PValue < 0.05
	c.EffectSize = CalculateCohensD(fastest.Times, second.Times)
	c.EffectSizeCategory = CategorizeEffectSize(c.EffectSize)
	return c
}

// EffectSizeCategory categorizes effect sizes using Cohen's conventions:
// negligible (<0.2), small (0.2-0.5), medium (0.5-0.8), large (>=0.8).
type EffectSizeCategory int

const (
	EffectNegligible EffectSizeCategory = iota
	EffectSmall
	EffectMedium
	EffectLarge
)

// String returns the string representation of the effect size category.
func (e EffectSizeCategory) String() string {
	switch e {
	case EffectNegligible:
		return "negligible"
	case EffectSmall:
		return "small"
	case EffectMedium:
		return "medium"
	case EffectLarge:
		return "large"
	default:
		return "unknown"
	}
}

// CategorizeEffectSize returns the category for a Cohen's d value,
// ignoring its sign.
func CategorizeEffectSize(d float64) EffectSizeCategory {
	absD := math.Abs(d)
	switch {
	case absD < 0.2:
		return EffectNegligible
	case absD < 0.5:
		return EffectSmall
	case absD < 0.8:
		return EffectMedium
	default:
		return EffectLarge
	}
}

// CalculateCohensD calculates Cohen's d between two sets of run times.
//
// Description:
//
//	Uses the pooled sample standard deviation (n-1 divisor) as
//	denominator. Negative d means xs1 is faster than xs2.
//
// Outputs:
//   - float64: 0 if either set is empty, both sets together hold fewer
//     than three samples, or the pooled standard deviation is 0.
func CalculateCohensD(xs1, xs2 []float64) float64 {
	n1, n2 := float64(len(xs1)), float64(len(xs2))
	if len(xs1) == 0 || len(xs2) == 0 || n1+n2 < 3 {
		return 0
	}
	s1, s2 := stats.Sample{Xs: xs1}, stats.Sample{Xs: xs2}

	// A single-sample set contributes no variance, only its mean.
	var v1, v2 float64
	if n1 > 1 {
		v1 = s1.Variance()
	}
	if n2 > 1 {
		v2 = s2.Variance()
	}
	pooledVar := ((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2)
	pooledStdDev := math.Sqrt(pooledVar)
	if pooledStdDev == 0 {
		return 0
	}
	return (s1.Mean() - s2.Mean()) / pooledStdDev
}

// WelchTTest performs a two-sided Welch's t-test for two sets of run times.
//
// Description:
//
//	Does not assume equal variances or equal sample sizes. The p-value
//	comes from the t-distribution with Welch-Satterthwaite degrees of
//	freedom.
//
// Outputs:
//   - tStatistic: Negative if xs1 is faster than xs2.
//   - pValue: Two-tailed. 1 if either set has fewer than two samples or
//     both have zero variance.
func WelchTTest(xs1, xs2 []float64) (tStatistic float64, pValue float64) {
	res, err := stats.TwoSampleWelchTTest(stats.Sample{Xs: xs1}, stats.Sample{Xs: xs2}, stats.LocationDiffers)
	if err != nil {
		return 0, 1
	}
	return res.T, res.P
}
