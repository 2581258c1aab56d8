package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/countdown-tracker/internal/config"
)

func TestSettingsDialogLoadsCurrentSettings(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetLanguage("zh")
	settings.SetThemeVariant(config.ThemeDark)
	settings.SetToastDuration(4 * time.Second)
	settings.SetResortOnExpiry(false)

	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), nil)
	sd.loadCurrentSettings()

	assert.Equal(t, 2, sd.languageSelect.SelectedIndex())
	assert.Equal(t, 2, sd.themeSelect.SelectedIndex())
	assert.Equal(t, "4", sd.toastEntry.Text)
	assert.False(t, sd.resortCheck.Checked)
}

func TestSettingsDialogApply(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	saved := 0

	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), func() { saved++ })
	sd.loadCurrentSettings()

	sd.languageSelect.SetSelectedIndex(3)
	sd.themeSelect.SetSelectedIndex(0)
	sd.resortCheck.SetChecked(false)
	sd.toastEntry.SetText("7")
	sd.Apply()

	assert.Equal(t, 1, saved)
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, config.ThemeSystem, settings.GetThemeVariant())
	assert.False(t, settings.GetResortOnExpiry())
	assert.Equal(t, 7*time.Second, settings.GetToastDuration())
}

func TestSettingsDialogInvalidToastSeconds(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)

	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), nil)
	sd.loadCurrentSettings()

	sd.toastEntry.SetText("soon")
	sd.Apply()
	assert.Equal(t, config.DefaultToastDuration*time.Millisecond, settings.GetToastDuration())

	sd.toastEntry.SetText("60")
	sd.Apply()
	assert.Equal(t, config.MaxToastDuration*time.Millisecond, settings.GetToastDuration())
}

func TestSettingsDialogCancelKeepsSettings(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)

	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), nil)
	sd.loadCurrentSettings()
	sd.themeSelect.SetSelectedIndex(2)
	sd.onSave(false)

	assert.Equal(t, config.ThemeLight, settings.GetThemeVariant())
}
