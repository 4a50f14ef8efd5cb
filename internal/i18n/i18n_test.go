// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("band.weak"); got != "Weak Password" {
		t.Fatalf("expected 'Weak Password', got %q", got)
	}

	// fmt-style formatting via non-map template args
	if got := T("strength.score", 40); got != "Strength Score: 40" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	// switch language to German
	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("dialog.yes"); got != "Ja" {
		t.Fatalf("expected German 'Ja', got %q", got)
	}
}

func TestT_UnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected ID fallback, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("fr")
	defer Init("en")
	if got := T("dialog.no"); got != "No" {
		t.Fatalf("expected English fallback 'No', got %q", got)
	}
}

func TestLocales_HaveSameKeys(t *testing.T) {
	Init("en")
	ids := []string{
		"criterion.lowercase", "criterion.uppercase", "criterion.special",
		"criterion.digit", "criterion.min_length",
		"band.weak", "band.medium", "band.strong",
		"dialog.exit_title", "dialog.exit_message",
	}
	for _, lang := range []string{"en", "de"} {
		SetLang(lang)
		for _, id := range ids {
			if T(id) == id {
				t.Fatalf("locale %s is missing %q", lang, id)
			}
		}
	}
	SetLang("en")
}
