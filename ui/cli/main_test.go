// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ciphershield/ciphershield/core/strength"
	"github.com/ciphershield/ciphershield/internal/config"
	"github.com/ciphershield/ciphershield/internal/i18n"
	"github.com/ciphershield/ciphershield/ui/tui"
)

// isolateConfig points every config location at a temp dir so tests never
// read or write the developer's real config.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	t.Setenv("CIPHERSHIELD_OUTPUT", "")
	t.Cleanup(func() { i18n.Init("en") })
	return dir
}

// run executes the CLI with args and stdin and returns stdout.
func run(t *testing.T, st *state, stdin string, args ...string) (string, error) {
	t.Helper()
	if st == nil {
		st = &state{runTUI: func(tui.Options) error {
			t.Fatal("TUI must not start")
			return nil
		}}
	}
	cmd := newRootCmd(st)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_StartsTUIWithConfiguredReveal(t *testing.T) {
	isolateConfig(t)

	var got *tui.Options
	st := &state{runTUI: func(o tui.Options) error {
		got = &o
		return nil
	}}
	if _, err := run(t, st, "", "--reveal"); err != nil {
		t.Fatalf("root returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected the TUI to be started")
	}
	if !got.Reveal {
		t.Fatal("expected --reveal to reach the TUI options")
	}
}

func TestRoot_WritesDefaultConfigOnFirstRun(t *testing.T) {
	isolateConfig(t)

	if _, err := run(t, nil, "", "criteria"); err != nil {
		t.Fatalf("criteria returned error: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "output: text") {
		t.Fatalf("default config missing output key:\n%s", data)
	}
}

func TestRoot_FirstRunRejectsInvalidFlagWithoutPersisting(t *testing.T) {
	isolateConfig(t)

	if _, err := run(t, nil, "", "check", "--output", "xml", "abc"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	out, err := run(t, nil, "", "check", "abc")
	if err != nil {
		t.Fatalf("second run must not inherit the rejected flag: %v", err)
	}
	if !strings.Contains(out, "Strength Score: 10") {
		t.Fatalf("expected text output, got:\n%s", out)
	}
}

func TestRoot_FirstRunDoesNotPersistOverrides(t *testing.T) {
	isolateConfig(t)
	t.Setenv("CIPHERSHIELD_LANGUAGE", "de")

	if _, err := run(t, nil, "", "check", "-o", "json", "abc"); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	for _, want := range []string{"output: text", "language: en", "reveal: false"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("default config missing %q:\n%s", want, data)
		}
	}

	t.Setenv("CIPHERSHIELD_LANGUAGE", "")
	out, err := run(t, nil, "", "check", "abc")
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if !strings.Contains(out, "Strength Score: 10") {
		t.Fatalf("one-off -o json must not become the default, got:\n%s", out)
	}
}

func TestRoot_ExplicitConfigFile(t *testing.T) {
	dir := isolateConfig(t)

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("output: json\nlanguage: en\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, nil, "", "--config", path, "check", "abc12345")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, `"score": 40`) {
		t.Fatalf("expected JSON output from config file, got:\n%s", out)
	}
}

func TestRoot_MissingExplicitConfigFails(t *testing.T) {
	dir := isolateConfig(t)

	_, err := run(t, nil, "", "--config", filepath.Join(dir, "nope.yaml"), "criteria")
	if err == nil {
		t.Fatal("expected an error for a missing --config file")
	}
}

func TestRoot_InvalidOutputRejected(t *testing.T) {
	isolateConfig(t)

	_, err := run(t, nil, "", "check", "--output", "xml", "abc")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRoot_EnvOverridesDefault(t *testing.T) {
	isolateConfig(t)
	t.Setenv("CIPHERSHIELD_OUTPUT", "yaml")

	out, err := run(t, nil, "", "check", "abc12345")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, "score: 40") {
		t.Fatalf("expected YAML output, got:\n%s", out)
	}
}

func TestCheck_JSON(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "", "check", "abc12345", "--output", "json")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	var res strength.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Score != 40 || res.Band != strength.Medium {
		t.Fatalf("got score=%d band=%s, want 40 medium", res.Score, res.Band)
	}
	if res.Criteria[strength.Uppercase] || !res.Criteria[strength.MinLength] {
		t.Fatalf("unexpected criteria: %v", res.Criteria)
	}
}

func TestCheck_TextReport(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "", "check", "Abcdefgh1!")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	for _, want := range []string{"Strength Score: 60", "Medium Password", "✅ At least 1 special character"} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Abcdefgh1!") {
		t.Error("report must not echo the password")
	}
}

func TestCheck_TextReportGerman(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "", "--language", "de", "check", "abc")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, "Stärkewert: 10") {
		t.Fatalf("expected German score line, got:\n%s", out)
	}
}

func TestCheck_Stdin(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "Abcdefgh1!XYZ\nignored\n", "check", "--stdin", "-o", "json")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, `"score": 80`) {
		t.Fatalf("expected score 80 from the first stdin line, got:\n%s", out)
	}
}

func TestCheck_NonTerminalStdinWithoutFlag(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "abc12345", "check", "-o", "json")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, `"score": 40`) {
		t.Fatalf("expected score 40, got:\n%s", out)
	}
}

func TestCheck_EmptyStdin(t *testing.T) {
	isolateConfig(t)

	_, err := run(t, nil, "", "check", "--stdin")
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("expected ErrNoCandidate, got %v", err)
	}
}

func TestCheck_EmptyLineIsACandidate(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "\n", "check", "--stdin", "-o", "json")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, `"score": 0`) {
		t.Fatalf("expected score 0 for the empty password, got:\n%s", out)
	}
}

func TestCheck_Clipboard(t *testing.T) {
	isolateConfig(t)

	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "Abcdefgh1!XYZabc\n", nil }

	out, err := run(t, nil, "", "check", "--clipboard", "-o", "json")
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, `"score": 100`) {
		t.Fatalf("expected score 100 from the clipboard, got:\n%s", out)
	}
}

func TestCheck_ClipboardError(t *testing.T) {
	isolateConfig(t)

	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "", errors.New("no clipboard") }

	if _, err := run(t, nil, "", "check", "--clipboard"); err == nil {
		t.Fatal("expected clipboard failure to be reported")
	}
}

func TestCheck_MinBand(t *testing.T) {
	isolateConfig(t)

	if _, err := run(t, nil, "", "check", "abc12345", "--min-band", "strong"); !errors.Is(err, ErrBelowMinimumBand) {
		t.Fatalf("expected ErrBelowMinimumBand, got %v", err)
	}
	if _, err := run(t, nil, "", "check", "abc12345", "--min-band", "medium"); err != nil {
		t.Fatalf("medium candidate should pass --min-band medium: %v", err)
	}
	if _, err := run(t, nil, "", "check", "abc12345", "--min-band", "excellent"); err == nil {
		t.Fatal("expected an error for an unknown band")
	}
}

func TestCriteria_Text(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "", "criteria")
	if err != nil {
		t.Fatalf("criteria returned error: %v", err)
	}
	for _, r := range strength.Rules() {
		if !strings.Contains(out, r.Name) {
			t.Errorf("rule %q missing from table:\n%s", r.Name, out)
		}
	}
	if !strings.Contains(out, "weak < 40 <= medium < 70 <= strong (max 100)") {
		t.Errorf("threshold line missing:\n%s", out)
	}
}

func TestCriteria_JSON(t *testing.T) {
	isolateConfig(t)

	out, err := run(t, nil, "", "criteria", "-o", "json")
	if err != nil {
		t.Fatalf("criteria returned error: %v", err)
	}
	var view criteriaView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(view.Rules) != 7 {
		t.Fatalf("expected 7 rules, got %d", len(view.Rules))
	}
	if view.MaxScore != 100 || view.Thresholds["strong"] != 70 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestWriteStructured_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := writeStructured(&buf, "toml", nil)
	if !errors.Is(err, ErrUnknownOutput) {
		t.Fatalf("expected ErrUnknownOutput, got %v", err)
	}
}
