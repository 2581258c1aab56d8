package ui

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("Expected default language 'en', got %s", got)
	}
	if got := l.GetText(KeyAppTitle); got != "Countdowns" {
		t.Errorf("Expected 'Countdowns', got %s", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		expected string
	}{
		{"Chinese", "zh", "zh"},
		{"Russian", "ru", "ru"},
		{"Unknown keeps current", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.expected {
				t.Errorf("SetLanguage(%q) current = %s, want %s", tt.lang, got, tt.expected)
			}
		})
	}
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("zh")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected unknown key to be returned as is, got %s", got)
	}

	delete(l.texts["zh"], KeyFooter)
	if got, want := l.GetText(KeyFooter), l.texts["en"][KeyFooter]; got != want {
		t.Errorf("Expected English fallback %q, got %q", want, got)
	}
}

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("No texts for language %s", lang)
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		locale   fyne.Locale
		expected string
	}{
		{"Chinese locale", "zh-CN", "zh"},
		{"Russian locale", "ru-RU", "ru"},
		{"English locale", "en-GB", "en"},
		{"Bare language", "ru", "ru"},
		{"Untranslated locale falls back to English", "de-DE", "en"},
		{"Empty locale falls back to English", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.systemLocale = func() fyne.Locale { return tt.locale }

			l.SetLanguage("zh")
			l.SetLanguage(LanguageSystem)
			if got := l.GetCurrentLanguage(); got != tt.expected {
				t.Errorf("system locale %q resolved to %s, want %s", tt.locale, got, tt.expected)
			}
		})
	}
}
