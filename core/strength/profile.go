// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"strings"
	"unicode"
)

// SpecialCharacters is the fixed set of characters counted as "special".
// The set is exhaustive: any other punctuation or symbol does not count.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// digitNumerics holds the runes outside Nd whose Unicode numeric type is
// Digit (superscripts, subscripts, circled and parenthesized digits, ...).
var digitNumerics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// isLower follows the Unicode Lowercase property: Ll plus Other_Lowercase
// (ª, ʰ, small roman numerals, ...).
func isLower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// isUpper follows the Unicode Uppercase property: Lu plus Other_Uppercase
// (Ⓐ, roman numerals, ...).
func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// isDigit accepts numeric types Decimal and Digit, so ² and ① count.
func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitNumerics, r)
}

// profile is the per-candidate summary the rule predicates look at.
type profile struct {
	length     int // in runes
	hasLower   bool
	hasUpper   bool
	hasDigit   bool
	hasSpecial bool
}

// scan builds a profile in a single pass over the candidate.
func scan(candidate string) profile {
	var p profile
	for _, r := range candidate {
		p.length++
		p.hasLower = p.hasLower || isLower(r)
		p.hasUpper = p.hasUpper || isUpper(r)
		p.hasDigit = p.hasDigit || isDigit(r)
		p.hasSpecial = p.hasSpecial || strings.ContainsRune(SpecialCharacters, r)
	}
	return p
}
