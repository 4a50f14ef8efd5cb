// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength scores candidate passwords.
//
// Evaluate is a pure function: it keeps no state between calls and may be
// invoked on every keystroke by a UI layer. The score is the sum of the
// points of every rule in the rule table whose predicate holds, so it always
// lies in [0, MaxScore]. Five of the rules double as user-facing criteria
// that are reported individually, regardless of the aggregate score.
package strength
