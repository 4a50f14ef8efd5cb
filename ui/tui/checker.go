// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ciphershield/ciphershield/core/strength"
	"github.com/ciphershield/ciphershield/internal/i18n"
	"github.com/ciphershield/ciphershield/internal/logging"
)

const (
	tick  = "✅"
	cross = "❌"
)

// Options configures a new checker.
type Options struct {
	// Reveal starts with the password shown in clear text.
	Reveal bool
}

// Model is the interactive strength checker. The only state it keeps is the
// input itself and the result of the last evaluation.
type Model struct {
	input      textinput.Model
	result     strength.Result
	lastValue  string
	confirm    *Dialog
	help       help.Model
	keys       KeyMap
	dialogKeys DialogKeyMap
	width      int
	height     int
	quitting   bool
}

// New creates a checker with an empty, focused input.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.placeholder")
	ti.Prompt = "> "
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Width = 40
	ti.TextStyle = focusedStyle
	ti.Cursor.Style = focusedStyle
	if opts.Reveal {
		ti.EchoMode = textinput.EchoNormal
	}
	ti.Focus()

	keys, dialogKeys := newKeyMaps()
	return Model{
		input:      ti,
		result:     strength.Evaluate(""),
		help:       help.New(),
		keys:       keys,
		dialogKeys: dialogKeys,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and re-evaluates the candidate whenever it changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Exit):
			m.confirm = NewDialog(
				i18n.T("dialog.exit_title"),
				i18n.T("dialog.exit_message"),
				i18n.T("dialog.yes"),
				i18n.T("dialog.no"),
			)
			// "No" is the safe default
			m.confirm.FocusRight()
			return m, nil
		case key.Matches(msg, m.keys.Reveal):
			m.toggleReveal()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, m.dialogKeys.Yes):
		return m.quit()
	case key.Matches(kmsg, m.dialogKeys.No):
		m.confirm = nil
	case key.Matches(kmsg, m.dialogKeys.Switch):
		m.confirm.Toggle()
	case key.Matches(kmsg, m.dialogKeys.Choose):
		if !m.confirm.IsFocusedRight() {
			return m.quit()
		}
		m.confirm = nil
	case kmsg.Type == tea.KeyCtrlC:
		// a second ctrl+c while confirming leaves immediately
		return m.quit()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.confirm = nil
	return m, tea.Quit
}

// refresh recomputes the result if the candidate changed.
func (m *Model) refresh() {
	value := m.input.Value()
	if value == m.lastValue {
		return
	}
	m.lastValue = value
	m.result = strength.Evaluate(value)
	logging.Debugf("candidate re-evaluated: score=%d band=%s", m.result.Score, m.result.Band)
}

func (m *Model) toggleReveal() {
	if m.input.EchoMode == textinput.EchoPassword {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

// Result returns the evaluation of the current input.
func (m Model) Result() strength.Result { return m.result }

// Revealed reports whether the password is shown in clear text.
func (m Model) Revealed() bool { return m.input.EchoMode == textinput.EchoNormal }

// Confirming reports whether the exit confirmation is open.
func (m Model) Confirming() bool { return m.confirm != nil }

// View renders the checker, or the exit confirmation on top of it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.confirm != nil {
		box := lipgloss.JoinVertical(lipgloss.Center,
			m.confirm.Render(),
			helpStyle.Render(m.help.ShortHelpView(m.dialogKeys.ShortHelp())),
		)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	toggle := i18n.T("tui.show")
	if m.Revealed() {
		toggle = i18n.T("tui.hide")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("app.title")))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(i18n.T("tui.prompt_label")))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", toggleStyle.Render(toggle)))
	b.WriteString("\n\n")
	b.WriteString(m.checklist())
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(i18n.T("strength.score", m.result.Score)))
	b.WriteString("\n")
	b.WriteString(bandStyle(m.result.Band).Render(i18n.T("band." + m.result.Band.String())))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return docStyle.Render(b.String())
}

func (m Model) checklist() string {
	lines := make([]string, 0, len(strength.Criteria()))
	for _, c := range strength.Criteria() {
		label := i18n.T("criterion." + string(c))
		if m.result.Criteria[c] {
			lines = append(lines, tick+" "+passedStyle.Render(label))
		} else {
			lines = append(lines, cross+" "+failedStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
