// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ciphershield/ciphershield/core/strength"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
	colorWeak      = lipgloss.Color("196") // Bright red
	colorMedium    = lipgloss.Color("208") // Orange
	colorStrong    = lipgloss.Color("40")  // Green
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 0, 1, 0)

	labelStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(colorSubtle)

	focusedStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Show/Hide toggle hint next to the input
	toggleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	passedStyle = lipgloss.NewStyle().Foreground(colorStrong)
	failedStyle = lipgloss.NewStyle().Foreground(colorWeak)

	scoreStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// bandStyle colours the band label: red, orange, green.
func bandStyle(b strength.Band) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch b {
	case strength.Strong:
		return s.Foreground(colorStrong)
	case strength.Medium:
		return s.Foreground(colorMedium)
	default:
		return s.Foreground(colorWeak)
	}
}
