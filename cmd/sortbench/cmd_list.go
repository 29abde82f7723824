// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/sortbench/pkg/cli"
	"github.com/AleutianAI/sortbench/pkg/ux"
	"github.com/AleutianAI/sortbench/services/sorting"
)

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available sorting algorithms",
		Args:  cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(sorting.All()))
			for _, a := range sorting.All() {
				stable := "no"
				if a.Stable() {
					stable = "yes"
				}
				rows = append(rows, []string{a.String(), a.Complexity(), stable})
			}
			fmt.Fprintln(stdout, ux.Table([]string{"Algorithm", "Complexity", "Stable"}, rows, -1))
			return nil
		},
	}
}
