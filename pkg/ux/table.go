// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders rows under headers with a rounded border.
//
// highlight is the index of a data row rendered in the highlight style,
// or -1 for none.
func Table(headers []string, rows [][]string, highlight int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.TableHeader
			case row == highlight:
				return Styles.TableCell.Foreground(ColorTealBright).Bold(true)
			default:
				return Styles.TableCell
			}
		})
	return t.Render()
}
