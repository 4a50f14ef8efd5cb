// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive password strength checker.
// Presentation and input handling live here; scoring is provided by
// core/strength and re-run on every change to the input.
package tui
