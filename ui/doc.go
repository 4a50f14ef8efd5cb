// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of CipherShield: the Cobra command
// tree in `ui/cli` and the interactive checker in `ui/tui`.
package ui
