// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the command-line interface for CipherShield using Cobra.
// It wires configuration, logging and localization, and provides commands that
// delegate scoring to `core/strength`. Without a subcommand it starts the
// interactive checker from `ui/tui`.
package cli
