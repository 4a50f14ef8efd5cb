// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security holds candidate passwords in a redacting wrapper so they
// cannot leak through formatting, logging or serialization, and can be wiped
// once scored.
package security
