// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"github.com/ciphershield/ciphershield/util/slicest"
)

// Criterion names one of the user-facing pass/fail checks.
type Criterion string

const (
	Lowercase Criterion = "lowercase"
	Uppercase Criterion = "uppercase"
	Special   Criterion = "special"
	Digit     Criterion = "digit"
	MinLength Criterion = "min_length"
)

// MinLengthChars is the candidate length, in runes, required by MinLength.
const MinLengthChars = 8

// criteria is the display order of the checklist.
var criteria = []Criterion{Lowercase, Uppercase, Special, Digit, MinLength}

// Criteria returns the five criterion names in display order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

// Rule is one row of the scoring table. Rules are independent of each other;
// a rule with a non-empty Criterion is also reported in Result.Criteria.
type Rule struct {
	Name      string
	Points    int
	Criterion Criterion
	holds     func(profile) bool
}

// Holds reports whether the rule's predicate is satisfied by candidate.
func (r Rule) Holds(candidate string) bool {
	return r.holds(scan(candidate))
}

func minRunes(n int) func(profile) bool {
	return func(p profile) bool { return p.length >= n }
}

// rules must keep MaxScore at 100: the score is not clamped.
var rules = []Rule{
	{Name: "min_length", Points: 20, Criterion: MinLength, holds: minRunes(MinLengthChars)},
	{Name: "length_12", Points: 20, holds: minRunes(12)},
	{Name: "length_16", Points: 20, holds: minRunes(16)},
	{Name: "lowercase", Points: 10, Criterion: Lowercase, holds: func(p profile) bool { return p.hasLower }},
	{Name: "uppercase", Points: 10, Criterion: Uppercase, holds: func(p profile) bool { return p.hasUpper }},
	{Name: "digit", Points: 10, Criterion: Digit, holds: func(p profile) bool { return p.hasDigit }},
	{Name: "special", Points: 10, Criterion: Special, holds: func(p profile) bool { return p.hasSpecial }},
}

// Rules returns a copy of the scoring table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// MaxScore is the sum of the points of every rule.
func MaxScore() int {
	return slicest.Reduce(rules, func(r Rule, sum int) int {
		return sum + r.Points
	})
}
