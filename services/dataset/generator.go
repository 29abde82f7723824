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
	"math/rand/v2"
	"slices"
)

// Sampling parameters.
const (
	normalMean  = 0.5
	normalSD    = 0.2
	expLambda   = 2.0
	betaAlpha   = 2.0
	betaBeta    = 5.0
	tinyUniform = 1e-300
)

// Generator produces synthetic integer datasets.
//
// Description:
//
//	Each Generator owns its random source and the spare value cached by
//	the Box–Muller transform, so two generators never influence each
//	other. A Generator must not be shared between goroutines; give each
//	goroutine its own.
type Generator struct {
	rng *rand.Rand

	// Box–Muller produces two normal samples per pair of uniforms; the
	// second is kept here for the next normal draw.
	hasSpare bool
	spare    float64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed makes the generator's output reproducible.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))
	}
}

// NewGenerator creates a generator seeded from the runtime's entropy
// unless WithSeed is given.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a dataset for spec.
//
// Description:
//
//	Validates spec, then samples Size values from the distribution and
//	maps each to an integer in [1, Size]. The first SortedCount() values
//	are sorted ascending; the rest keep their sampled order. Perturbation
//	0 therefore yields a fully sorted dataset and 1 an unsorted one.
//
// Outputs:
//
//	[]int - Exactly spec.Size values.
//	error - Wraps ErrInvalidSpec; nothing is sampled in that case.
func (g *Generator) Generate(spec Spec) ([]int, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	data := make([]int, spec.Size)
	for i := range data {
		data[i] = toRange(g.sample(spec.Distribution), spec.Size)
	}

	if n := spec.SortedCount(); n > 0 {
		slices.Sort(data[:n])
	}
	return data, nil
}

// sample draws one value from d. Two uniforms are consumed per call for
// every distribution.
func (g *Generator) sample(d Distribution) float64 {
	u1 := g.rng.Float64()
	u2 := g.rng.Float64()

	switch d {
	case Normal:
		return g.normal(u1, u2)
	case Exponential:
		x := -math.Log(1-u1) / expLambda
		return 1 - math.Exp(-x)
	case Beta:
		x := math.Pow(u1, 1/betaAlpha)
		y := math.Pow(u2, 1/betaBeta)
		if x+y == 0 {
			return 0
		}
		return x / (x + y)
	default:
		return u1
	}
}

// normal applies the Box–Muller transform with mean 0.5 and sd 0.2.
// Every other call returns the spare from the previous transform and
// ignores its uniforms.
func (g *Generator) normal(u1, u2 float64) float64 {
	if g.hasSpare {
		g.hasSpare = false
		return g.spare*normalSD + normalMean
	}

	if u1 < tinyUniform {
		u1 = tinyUniform
	}
	mag := math.Sqrt(-2 * math.Log(u1))
	g.spare = mag * math.Cos(2*math.Pi*u2)
	g.hasSpare = true
	return mag*math.Sin(2*math.Pi*u2)*normalSD + normalMean
}

// toRange clamps v to [0, 1] and maps it to an integer in [1, size].
func toRange(v float64, size int) int {
	if size <= 1 {
		return 1
	}
	switch {
	case math.IsNaN(v) || v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	return int(v*float64(size-1)) + 1
}
