// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ciphershield/ciphershield/core/strength"
	"github.com/ciphershield/ciphershield/internal/config"
	"github.com/ciphershield/ciphershield/internal/i18n"
)

var (
	// ErrNoCandidate is returned by check when no password could be read.
	ErrNoCandidate = errors.New("no password given")
	// ErrBelowMinimumBand is returned by check when --min-band is not met.
	ErrBelowMinimumBand = errors.New("password below minimum band")
	// ErrUnknownOutput is returned for an --output value no renderer handles.
	ErrUnknownOutput = errors.New("unknown output format")
)

// writeStructured encodes v as JSON or YAML. It reports false for text so the
// caller can fall back to its own layout.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case config.OutputText:
		return false, nil
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case config.OutputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return true, err
	default:
		return true, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

// writeReport prints res in the requested format.
func writeReport(w io.Writer, format string, res strength.Result) error {
	if done, err := writeStructured(w, format, res); done {
		return err
	}

	if _, err := fmt.Fprintln(w, i18n.T("strength.score", res.Score)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, i18n.T("band."+res.Band.String())); err != nil {
		return err
	}
	for _, c := range strength.Criteria() {
		mark := "❌"
		if res.Criteria[c] {
			mark = "✅"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, i18n.T("criterion."+string(c))); err != nil {
			return err
		}
	}
	return nil
}
