// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/ciphershield/ciphershield/internal/i18n"
)

// KeyMap avoids printable keys: anything printable may be part of a password.
type KeyMap struct {
	Reveal key.Binding
	Paste  key.Binding
	Exit   key.Binding
	Help   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Reveal, km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Reveal, km.Paste}, {km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DialogKeyMap drives the exit confirmation.
type DialogKeyMap struct {
	Switch key.Binding
	Choose key.Binding
	Yes    key.Binding
	No     key.Binding
}

func (km DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Switch, km.Choose, km.Yes, km.No}
}

func (km DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

var _ help.KeyMap = (*DialogKeyMap)(nil)

// newKeyMaps builds the bindings with help text in the active language.
func newKeyMaps() (KeyMap, DialogKeyMap) {
	return KeyMap{
			Reveal: key.NewBinding(
				key.WithKeys("ctrl+r"),
				key.WithHelp("ctrl+r", i18n.T("help.reveal")),
			),
			Paste: key.NewBinding(
				key.WithKeys("ctrl+v"),
				key.WithHelp("ctrl+v", i18n.T("help.paste")),
			),
			Exit: key.NewBinding(
				key.WithKeys("esc", "ctrl+c"),
				key.WithHelp("esc", i18n.T("help.exit")),
			),
			Help: key.NewBinding(
				key.WithKeys("f1"),
				key.WithHelp("f1", i18n.T("help.help")),
			),
		}, DialogKeyMap{
			Switch: key.NewBinding(
				key.WithKeys("left", "right", "tab", "shift+tab", "h", "l"),
				key.WithHelp("←/→", i18n.T("help.choose")),
			),
			Choose: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.confirm")),
			),
			Yes: key.NewBinding(
				key.WithKeys("y", "Y"),
				key.WithHelp("y", i18n.T("dialog.yes")),
			),
			No: key.NewBinding(
				key.WithKeys("n", "N", "esc"),
				key.WithHelp("n", i18n.T("dialog.no")),
			),
		}
}
