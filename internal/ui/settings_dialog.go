package ui

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countdown-tracker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	themeSelect    *widget.Select
	resortCheck    *widget.Check
	toastEntry     *widget.Entry

	languageCodes []string
	themeVariants []config.ThemeVariant
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	languages := sd.settings.GetLanguageOptions()
	sd.languageCodes = []string{LanguageSystem, "en", "zh", "ru"}
	languageLabels := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		languageLabels = append(languageLabels, languages[code])
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	sd.themeVariants = sd.settings.GetThemeVariantOptions()
	themeLabels := make([]string, 0, len(sd.themeVariants))
	for _, v := range sd.themeVariants {
		themeLabels = append(themeLabels, sd.themeText(v))
	}
	sd.themeSelect = widget.NewSelect(themeLabels, nil)

	sd.resortCheck = widget.NewCheck(sd.localization.GetText(KeyResortOnExpiry), nil)

	sd.toastEntry = widget.NewEntry()
	sd.toastEntry.SetPlaceHolder("1-10")

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyBehaviourSettings)),
		widget.NewSeparator(),

		sd.resortCheck,

		widget.NewLabel(sd.localization.GetText(KeyToastSeconds)+":"),
		sd.toastEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}
	variant := sd.settings.GetThemeVariant()
	for i, v := range sd.themeVariants {
		if v == variant {
			sd.themeSelect.SetSelectedIndex(i)
		}
	}
	sd.resortCheck.SetChecked(sd.settings.GetResortOnExpiry())
	sd.toastEntry.SetText(strconv.Itoa(int(sd.settings.GetToastDuration() / time.Second)))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.Apply()
}

// Apply writes the dialog values to settings and fires the saved callback
func (sd *SettingsDialog) Apply() {
	if i := sd.languageSelect.SelectedIndex(); i >= 0 && i < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}

	if i := sd.themeSelect.SelectedIndex(); i >= 0 && i < len(sd.themeVariants) {
		sd.settings.SetThemeVariant(sd.themeVariants[i])
	}

	sd.settings.SetResortOnExpiry(sd.resortCheck.Checked)

	// Invalid input keeps the stored duration
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.toastEntry.Text)); err == nil {
		sd.settings.SetToastDuration(time.Duration(seconds) * time.Second)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// themeText returns the localized name of a theme variant
func (sd *SettingsDialog) themeText(v config.ThemeVariant) string {
	switch v {
	case config.ThemeDark:
		return sd.localization.GetText(KeyThemeDark)
	case config.ThemeLight:
		return sd.localization.GetText(KeyThemeLight)
	default:
		return sd.localization.GetText(KeyThemeSystem)
	}
}
