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
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrInvalidSpec indicates a generation request outside the allowed bounds.
	ErrInvalidSpec = errors.New("invalid dataset specification")

	// ErrUnknownDistribution indicates a distribution name outside the set.
	ErrUnknownDistribution = errors.New("unknown distribution")
)

// MaxSize is the largest dataset the tools generate or load.
const MaxSize = 500000

// =============================================================================
// Distributions
// =============================================================================

// Distribution names the shape of the sampled values.
type Distribution string

const (
	Uniform     Distribution = "uniform"
	Normal      Distribution = "normal"
	Exponential Distribution = "exponential"
	Beta        Distribution = "beta"
)

// Distributions returns every supported distribution.
func Distributions() []Distribution {
	return []Distribution{Uniform, Normal, Exponential, Beta}
}

// ParseDistribution resolves a case-insensitive distribution name.
func ParseDistribution(name string) (Distribution, error) {
	d := Distribution(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Distributions() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected uniform, normal, exponential or beta)", ErrUnknownDistribution, name)
}

// =============================================================================
// Specification
// =============================================================================

// specValidate is the validator instance for generation requests.
var specValidate = validator.New()

// Spec describes a dataset to generate.
//
// # Validation
//
// Uses go-playground/validator:
//   - Size: 1 to MaxSize
//   - Distribution: one of uniform, normal, exponential, beta
//   - Perturbation: 0.0 to 1.0 inclusive (NaN fails both bounds)
//
// Out-of-range values are rejected, never clamped.
type Spec struct {
	Size         int          `yaml:"size" validate:"min=1,max=500000"`
	Distribution Distribution `yaml:"distribution" validate:"oneof=uniform normal exponential beta"`
	Perturbation float64      `yaml:"perturbation" validate:"gte=0,lte=1"`
}

// SortedCount is the length of the sorted prefix: floor(Size * (1 - Perturbation)).
func (s Spec) SortedCount() int {
	n := int(float64(s.Size) * (1 - s.Perturbation))
	if n < 0 {
		return 0
	}
	if n > s.Size {
		return s.Size
	}
	return n
}

// Validate checks the spec's bounds.
//
// # Outputs
//
//   - error: Wraps ErrInvalidSpec with one readable message per failing field.
func (s Spec) Validate() error {
	err := specValidate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Size":
			msgs = append(msgs, fmt.Sprintf("size must be between 1 and %d, got %v", MaxSize, fe.Value()))
		case "Distribution":
			msgs = append(msgs, fmt.Sprintf("distribution must be one of uniform, normal, exponential, beta, got %q", fe.Value()))
		case "Perturbation":
			msgs = append(msgs, fmt.Sprintf("perturbation must be between 0.0 and 1.0, got %v", fe.Value()))
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(msgs, "; "))
}
