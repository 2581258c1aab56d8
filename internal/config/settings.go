package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/countdown-tracker/internal/model"
)

// ThemeVariant selects the colour scheme
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyThemeVariant   = "theme_variant"
	KeyFilter         = "countdown_filter"
	KeyToastDuration  = "toast_duration_ms"
	KeyResortOnExpiry = "resort_on_expiry"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultThemeVariant   = ThemeLight
	DefaultFilter         = model.FilterAll
	DefaultToastDuration  = 3000
	DefaultResortOnExpiry = true

	MinToastDuration = 1000
	MaxToastDuration = 10000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
		"ru":     "Русский",
	}
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	switch v := ThemeVariant(s.app.Preferences().String(KeyThemeVariant)); v {
	case ThemeSystem, ThemeLight, ThemeDark:
		return v
	default:
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
}

// SetThemeVariant sets the theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetFilter returns the last selected list filter
func (s *Settings) GetFilter() model.Filter {
	f, err := model.ParseFilter(s.app.Preferences().String(KeyFilter))
	if err != nil {
		s.SetFilter(DefaultFilter)
		return DefaultFilter
	}
	return f
}

// SetFilter remembers the selected list filter
func (s *Settings) SetFilter(f model.Filter) {
	s.app.Preferences().SetString(KeyFilter, string(f))
}

// GetToastDuration returns how long toasts stay visible
func (s *Settings) GetToastDuration() time.Duration {
	ms := s.app.Preferences().Int(KeyToastDuration)
	if ms <= 0 {
		s.SetToastDuration(DefaultToastDuration * time.Millisecond)
		return DefaultToastDuration * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SetToastDuration sets how long toasts stay visible
func (s *Settings) SetToastDuration(d time.Duration) {
	ms := int(d / time.Millisecond)
	if ms < MinToastDuration {
		ms = MinToastDuration
	}
	if ms > MaxToastDuration {
		ms = MaxToastDuration
	}
	s.app.Preferences().SetInt(KeyToastDuration, ms)
}

// GetResortOnExpiry returns whether the list re-sorts when a countdown expires
func (s *Settings) GetResortOnExpiry() bool {
	return s.app.Preferences().BoolWithFallback(KeyResortOnExpiry, DefaultResortOnExpiry)
}

// SetResortOnExpiry sets whether the list re-sorts when a countdown expires
func (s *Settings) SetResortOnExpiry(resort bool) {
	s.app.Preferences().SetBool(KeyResortOnExpiry, resort)
}
