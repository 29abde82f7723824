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
	"github.com/AleutianAI/sortbench/pkg/config"
	"github.com/AleutianAI/sortbench/pkg/ux"
)

func newConfigCmd(stdout io.Writer, opts *benchOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the sortbench configuration file",
		Args:  cli.NoArgs,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration (default ./" + config.DefaultFileName + ")",
		Args:  cli.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			} else if opts.configPath != "" {
				path = opts.configPath
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			ux.Success(stdout, fmt.Sprintf("wrote default config to %s", path))
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	return configCmd
}
