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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AleutianAI/sortbench/pkg/logging"
)

// WriteReport persists the report, falling back to a second path.
//
// Description:
//
//	Creates the primary path's directory and writes the JSON report there.
//	If that fails, logs a warning and writes to fallback instead. An
//	empty fallback disables the second attempt.
//
// Inputs:
//   - r: The report.
//   - primary: Preferred destination.
//   - fallback: Destination used when primary cannot be written.
//   - logger: Receives the fallback warning. Nil discards it.
//
// Outputs:
//   - string: The path actually written.
//   - error: Non-nil only when every attempt failed; joins both causes.
func WriteReport(r Report, primary, fallback string, logger *logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(r); err != nil {
		return "", err
	}

	primaryErr := writeFile(primary, buf.Bytes())
	if primaryErr == nil {
		return primary, nil
	}
	if fallback == "" || fallback == primary {
		return "", primaryErr
	}

	logger.Warn("could not write report, using fallback path",
		"path", primary,
		"fallback", fallback,
		"error", primaryErr,
	)
	if err := writeFile(fallback, buf.Bytes()); err != nil {
		return "", errors.Join(primaryErr, err)
	}
	return fallback, nil
}

// ReadReport loads a report previously written by WriteReport.
func ReadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return r, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
