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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrMalformedToken indicates a token that is not a base-10 integer.
	ErrMalformedToken = errors.New("malformed integer")

	// ErrEmptyDataset indicates a file without any integers.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrDatasetTooLarge indicates more than MaxSize integers.
	ErrDatasetTooLarge = errors.New("dataset too large")
)

// Load reads a dataset file.
//
// Description:
//
//	Parses whitespace-separated base-10 integers until EOF. Any token that
//	does not parse fails the whole load; there is no partial result.
//
// Outputs:
//
//	[]int - The values in file order.
//	error - Wraps ErrMalformedToken, ErrEmptyDataset, ErrDatasetTooLarge,
//	        or the *fs.PathError from opening the file.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	data, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Read parses whitespace-separated integers from r. See Load.
func Read(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var data []int
	for scanner.Scan() {
		token := scanner.Text()
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w %q at position %d", ErrMalformedToken, token, len(data)+1)
		}
		if len(data) == MaxSize {
			return nil, fmt.Errorf("%w: more than %d values", ErrDatasetTooLarge, MaxSize)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	return data, nil
}

// Save writes data to path, one integer per line.
//
// A failed write removes the partially written file.
func Save(path string, data []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close dataset: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := Write(f, data); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return nil
}

// Write writes data to w, one integer per line.
func Write(w io.Writer, data []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
