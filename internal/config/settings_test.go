package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/countdown-tracker/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("zh")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "zh" {
		t.Errorf("Expected language 'zh', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "zh", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestThemeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if variant := settings.GetThemeVariant(); variant != DefaultThemeVariant {
		t.Errorf("Expected default theme %s, got %s", DefaultThemeVariant, variant)
	}

	settings.SetThemeVariant(ThemeDark)
	if variant := settings.GetThemeVariant(); variant != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, variant)
	}

	// Unknown stored values fall back to the default
	app.Preferences().SetString(KeyThemeVariant, "sepia")
	if variant := settings.GetThemeVariant(); variant != DefaultThemeVariant {
		t.Errorf("Expected fallback theme %s, got %s", DefaultThemeVariant, variant)
	}
}

func TestFilter(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if f := settings.GetFilter(); f != model.FilterAll {
		t.Errorf("Expected default filter %s, got %s", model.FilterAll, f)
	}

	settings.SetFilter(model.FilterExpired)
	if f := settings.GetFilter(); f != model.FilterExpired {
		t.Errorf("Expected filter %s, got %s", model.FilterExpired, f)
	}

	app.Preferences().SetString(KeyFilter, "bogus")
	if f := settings.GetFilter(); f != model.FilterAll {
		t.Errorf("Expected fallback filter %s, got %s", model.FilterAll, f)
	}
}

func TestToastDuration(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if d := settings.GetToastDuration(); d != 3*time.Second {
		t.Errorf("Expected default toast duration 3s, got %v", d)
	}

	settings.SetToastDuration(5 * time.Second)
	if d := settings.GetToastDuration(); d != 5*time.Second {
		t.Errorf("Expected toast duration 5s, got %v", d)
	}

	// Test boundary values
	settings.SetToastDuration(10 * time.Millisecond) // Should be clamped to 1s
	if settings.GetToastDuration() != time.Second {
		t.Error("Toast duration should be clamped to minimum 1s")
	}

	settings.SetToastDuration(time.Minute) // Should be clamped to 10s
	if settings.GetToastDuration() != 10*time.Second {
		t.Error("Toast duration should be clamped to maximum 10s")
	}
}

func TestResortOnExpiry(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetResortOnExpiry() {
		t.Error("Resort on expiry should default to true")
	}

	settings.SetResortOnExpiry(false)
	if settings.GetResortOnExpiry() {
		t.Error("Resort on expiry should be false after SetResortOnExpiry(false)")
	}
}
