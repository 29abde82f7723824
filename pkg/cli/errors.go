// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// UsageHint follows every usage error on stderr.
const UsageHint = "Use --help for usage information."

// UsageError marks a failure caused by the command line itself: a missing
// or malformed flag, an out-of-range value, an unknown algorithm name.
//
// # Description
//
// Execute prints UsageHint after a UsageError. Every other error is
// printed on its own. UsageError supports unwrapping, so sentinel checks
// such as errors.Is(err, sorting.ErrUnknownAlgorithm) see through it.
//
// # Example
//
//	if runs < 1 {
//	    return cli.Usagef("--runs must be at least 1, got %d", runs)
//	}
type UsageError struct {
	// Wrapped is the underlying error.
	Wrapped error
}

// Error returns the wrapped message unchanged.
func (e *UsageError) Error() string {
	if e.Wrapped == nil {
		return "invalid usage"
	}
	return e.Wrapped.Error()
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Wrapped
}

// NewUsageError wraps err as a UsageError. A nil err stays nil and an
// existing UsageError is not wrapped twice.
func NewUsageError(err error) error {
	if err == nil {
		return nil
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return err
	}
	return &UsageError{Wrapped: err}
}

// Usagef formats a new UsageError. %w verbs are honored.
func Usagef(format string, args ...any) error {
	return &UsageError{Wrapped: fmt.Errorf(format, args...)}
}

// IsUsageError reports whether err's chain holds a UsageError.
func IsUsageError(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage)
}

// NoArgs is cobra.NoArgs reporting a UsageError.
func NoArgs(cmd *cobra.Command, args []string) error {
	return NewUsageError(cobra.NoArgs(cmd, args))
}

// MaximumNArgs is cobra.MaximumNArgs reporting a UsageError.
func MaximumNArgs(n int) cobra.PositionalArgs {
	check := cobra.MaximumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		return NewUsageError(check(cmd, args))
	}
}
