// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import "github.com/bobg/go-generics/v4/slices"

// Result is the outcome of evaluating one candidate.
type Result struct {
	Score    int                `json:"score" yaml:"score"`
	Band     Band               `json:"band" yaml:"band"`
	Criteria map[Criterion]bool `json:"criteria" yaml:"criteria"`
}

// Evaluate scores candidate. Every input, including the empty string,
// yields a valid result.
func Evaluate(candidate string) Result {
	p := scan(candidate)

	res := Result{Criteria: make(map[Criterion]bool, len(criteria))}
	for _, r := range rules {
		ok := r.holds(p)
		if ok {
			res.Score += r.Points
		}
		if r.Criterion != "" {
			res.Criteria[r.Criterion] = ok
		}
	}
	res.Band = BandFor(res.Score)
	return res
}

// Satisfied returns the criteria that hold, in display order.
func (r Result) Satisfied() []Criterion {
	return slices.Filter(criteria, func(c Criterion) bool { return r.Criteria[c] })
}

// Missing returns the criteria that do not hold, in display order.
func (r Result) Missing() []Criterion {
	return slices.Filter(criteria, func(c Criterion) bool { return !r.Criteria[c] })
}
