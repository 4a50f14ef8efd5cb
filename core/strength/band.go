// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"fmt"
	"strings"
)

// Band is the qualitative classification of a score.
type Band int

const (
	Weak Band = iota
	Medium
	Strong
)

// Band thresholds. They are fixed, not configurable.
const (
	MediumThreshold = 40
	StrongThreshold = 70
)

// BandFor maps a score to its band.
func BandFor(score int) Band {
	switch {
	case score >= StrongThreshold:
		return Strong
	case score >= MediumThreshold:
		return Medium
	default:
		return Weak
	}
}

func (b Band) String() string {
	switch b {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	}
	return fmt.Sprintf("band(%d)", int(b))
}

// ParseBand is the inverse of Band.String, ignoring case and surrounding space.
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weak":
		return Weak, nil
	case "medium":
		return Medium, nil
	case "strong":
		return Strong, nil
	}
	return Weak, fmt.Errorf("unknown strength band %q", s)
}

func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
