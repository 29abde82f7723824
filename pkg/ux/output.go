// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the sortbench tools.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // headers
	ColorTealDeep    = lipgloss.Color("#16858E") // borders
	ColorSlate       = lipgloss.Color("#2C4A54") // muted text

	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	Box lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorTealPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),

	TableHeader: lipgloss.NewStyle().Bold(true).Foreground(ColorTealPrimary).Padding(0, 1),
	TableCell:   lipgloss.NewStyle().Padding(0, 1),
	TableBorder: lipgloss.NewStyle().Foreground(ColorTealDeep),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin/MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Title writes a styled title line
func Title(w io.Writer, text string) {
	fmt.Fprintln(w, Styles.Title.Render(text))
}

// Success writes a success line with checkmark
func Success(w io.Writer, text string) {
	fmt.Fprintf(w, "%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
}

// Warning writes a warning line
func Warning(w io.Writer, text string) {
	fmt.Fprintf(w, "%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
}

// KeyValue writes an aligned "key: value" line with a muted key
func KeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %v\n", Styles.Muted.Render(fmt.Sprintf("%-22s", key+":")), value)
}

// Box writes text in a rounded box
func Box(w io.Writer, title, content string) {
	titleLine := Styles.Title.Render(title)
	fmt.Fprintln(w, Styles.Box.Render(titleLine+"\n"+content))
}
