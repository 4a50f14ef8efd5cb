// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ciphershield/ciphershield/internal/logging"
)

// Run starts the interactive checker on the alternate screen and blocks
// until the user confirms exit.
func Run(opts Options) error {
	// the alternate screen owns the terminal; keep log lines off it
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	_, err := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
	).Run()
	return err
}
