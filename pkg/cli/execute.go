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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes for the sortbench commands.
const (
	ExitOK    = 0 // Operation completed successfully, or help was shown
	ExitError = 1 // Validation, parse, or I/O failure
)

// Execute runs cmd and maps the outcome to a process exit code.
//
// # Description
//
// Cobra's own error and usage printing is silenced. On failure Execute
// prints "Error: <message>" to stderr, followed by UsageHint when the
// error is a UsageError. Flag parse errors are reported as UsageErrors.
//
// # Inputs
//
//   - cmd: The root command, with args already set if not os.Args.
//   - stderr: Destination for the error message.
//
// # Outputs
//
//   - int: ExitOK or ExitError.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewUsageError(err)
	})

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if IsUsageError(err) {
		fmt.Fprintln(stderr, UsageHint)
	}
	return ExitError
}

// WriteJSON encodes v to w with the given indent. An empty indent writes
// compact JSON. A trailing newline is always written.
func WriteJSON(w io.Writer, v any, indent string) error {
	encoder := json.NewEncoder(w)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	return encoder.Encode(v)
}
