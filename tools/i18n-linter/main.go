// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for missing or orphaned translation
// keys. It scans the Go sources for i18n.T calls and compares them with the
// YAML catalogues under internal/i18n/locales.
//
// Usage (from the repository root):
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") and i18n.T("prefix." + x)
	literalCall = regexp.MustCompile(`i18n\.T\("([^"]+)"\s*([+,)])`)
)

// usage is what the sources reference: exact keys plus prefixes of keys that
// are assembled at runtime (e.g. "band." + b.String()).
type usage struct {
	keys     map[string]struct{}
	prefixes []string
}

func (u usage) covers(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	for _, p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// report is the result of one lint run.
type report struct {
	Orphaned []string
	// Missing maps locale file name to the primary keys it lacks.
	Missing map[string][]string
}

func main() {
	os.Exit(run(os.Stdout, projectRoot, filepath.Join(projectRoot, localesDir)))
}

func run(w io.Writer, root, locales string) int {
	fmt.Fprintln(w, "🔍 Running i18n linter...")
	r, err := lint(root, locales)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "--- Orphaned keys (in primary locale but not used in code) ---")
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", k)
	}

	fmt.Fprintln(w, "--- Missing keys (in primary locale but not in others) ---")
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	failed := false
	for _, f := range files {
		if len(r.Missing[f]) == 0 {
			fmt.Fprintf(w, "  ✨ %s: all keys present.\n", f)
			continue
		}
		failed = true
		for _, k := range r.Missing[f] {
			fmt.Fprintf(w, "  - Missing in %s: %s\n", f, k)
		}
	}

	switch {
	case failed:
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
		return 1
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
	return 0
}

func lint(root, locales string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	r := report{Missing: map[string][]string{}}
	for key := range primary {
		if !used.covers(key) {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("loading %s: %w", name, err)
		}
		missing := []string{}
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.Missing[name] = missing
	}
	return r, nil
}

// findUsedKeys scans all non-test .go files below root for i18n.T calls.
func findUsedKeys(root string) (usage, error) {
	u := usage{keys: map[string]struct{}{}}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range literalCall.FindAllStringSubmatch(string(content), -1) {
			if m[2] == "+" {
				u.prefixes = append(u.prefixes, m[1])
			} else {
				u.keys[m[1]] = struct{}{}
			}
		}
		return nil
	})
	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys. Flat catalogues
// pass through unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
