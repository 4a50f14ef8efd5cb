// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Dialog represents a modal dialog box with title, message, and two buttons.
type Dialog struct {
	title       string
	message     string
	buttonLeft  string
	buttonRight string
	focused     bool // which button is focused (false = left, true = right)
	width       int
}

// NewDialog creates a new dialog with the given title, message, and button labels.
func NewDialog(title, message, buttonLeft, buttonRight string) *Dialog {
	return &Dialog{
		title:       title,
		message:     message,
		buttonLeft:  buttonLeft,
		buttonRight: buttonRight,
		width:       48,
	}
}

// SetWidth sets the dialog width, keeping room for the buttons.
func (d *Dialog) SetWidth(width int) {
	d.width = max(width, 24)
}

// Toggle moves focus to the other button.
func (d *Dialog) Toggle() {
	d.focused = !d.focused
}

// FocusRight moves focus to the right button.
func (d *Dialog) FocusRight() {
	d.focused = true
}

// FocusLeft moves focus to the left button.
func (d *Dialog) FocusLeft() {
	d.focused = false
}

// IsFocusedRight returns true if the right button is focused.
func (d *Dialog) IsFocusedRight() bool {
	return d.focused
}

// Render produces the dialog box output with auto-calculated height.
func (d *Dialog) Render() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(d.width)

	header := headerStyle.Render(" " + d.title)

	messageStyle := lipgloss.NewStyle().
		Width(d.width-4).
		Padding(1, 2, 0, 2)

	message := messageStyle.Render(d.message)

	dialog := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		message,
		d.renderButtonArea(),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(d.width)

	return boxStyle.Render(dialog)
}

// renderButtonArea produces the button row; the focused button is highlighted.
func (d *Dialog) renderButtonArea() string {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("239")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239")).
		Padding(0, 3, 0, 3)
	active := base.
		Background(lipgloss.Color("60")).
		BorderForeground(lipgloss.Color("60"))

	leftStyle, rightStyle := active, base
	if d.focused {
		leftStyle, rightStyle = base, active
	}

	buttonRow := lipgloss.JoinHorizontal(lipgloss.Center,
		leftStyle.Render(d.buttonLeft),
		"  ",
		rightStyle.Render(d.buttonRight),
	)

	return lipgloss.NewStyle().
		Padding(1, 2, 1, 2).
		Render(buttonRow)
}
