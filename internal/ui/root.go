package ui

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/wb-go/wbf/zlog"

	"github.com/ytget/countdown-tracker/internal/config"
	"github.com/ytget/countdown-tracker/internal/model"
	"github.com/ytget/countdown-tracker/internal/notify"
	"github.com/ytget/countdown-tracker/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	repo         store.Repository
	toasts       notify.Notifier
	settings     *config.Settings
	localization *Localization

	// UI components
	heading     *widget.Label
	footer      *widget.Label
	settingsBtn *widget.Button
	form        *CountdownForm
	statsBar    *StatsBar
	list        *fyne.Container
	emptyTitle  *widget.Label
	emptyHint   *widget.Label
	emptyState  *fyne.Container
	toastLayer  *ToastLayer

	// View state
	filter  model.Filter
	rows    map[int64]*CountdownRow
	visible []int64

	location *time.Location
	now      func() time.Time
	confirm  func(title, message string, onConfirm func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, repo store.Repository, toasts notify.Notifier, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		repo:         repo,
		toasts:       toasts,
		settings:     settings,
		localization: localization,
		filter:       settings.GetFilter(),
		rows:         make(map[int64]*CountdownRow),
		location:     time.Local,
		now:          time.Now,
	}
	ui.confirm = ui.showConfirm

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.repo.SetUpdateCallback(func([]model.Countdown) { ui.refreshView() })
	ui.toasts.SetUpdateCallback(ui.onToastsChanged)
	window.SetOnClosed(ui.Shutdown)

	ui.setupUI()
	ui.refreshView()

	zlog.Logger.Info().Int("countdowns", repo.Len()).Str("filter", string(ui.filter)).Msg("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.heading = widget.NewLabel("")
	ui.heading.TextStyle = fyne.TextStyle{Bold: true}
	ui.heading.SizeName = theme.SizeNameHeadingText

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.footer = widget.NewLabel("")
	ui.footer.Alignment = fyne.TextAlignCenter
	ui.footer.SizeName = theme.SizeNameCaptionText
	ui.footer.Importance = widget.LowImportance

	ui.form = NewCountdownForm(ui.localization)
	ui.form.SetCallbacks(ui.handleSubmit, nil)

	ui.statsBar = NewStatsBar(ui.localization, ui.filter)
	ui.statsBar.SetCallbacks(ui.onFilterChanged, ui.onClearExpired, ui.onClearAll)

	ui.list = container.NewVBox()

	ui.emptyTitle = widget.NewLabel("")
	ui.emptyTitle.Alignment = fyne.TextAlignCenter
	ui.emptyTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.emptyHint = widget.NewLabel("")
	ui.emptyHint.Alignment = fyne.TextAlignCenter
	ui.emptyHint.Importance = widget.LowImportance
	ui.emptyState = container.NewVBox(widget.NewIcon(theme.HistoryIcon()), ui.emptyTitle, ui.emptyHint)

	ui.toastLayer = NewToastLayer(func(id string) { ui.toasts.Dismiss(id) })

	top := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.heading)
	listPane := container.NewBorder(ui.statsBar.Container(), nil, nil, nil,
		container.NewStack(container.NewVScroll(ui.list), container.NewCenter(ui.emptyState)),
	)
	split := NewDeviceLayout(fyne.CurrentDevice()).Arrange(container.NewVScroll(ui.form.Container()), listPane)

	page := container.NewBorder(top, ui.footer, nil, nil, split)
	ui.window.SetContent(container.NewStack(page, ui.toastLayer.Container()))
	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	clearExpiredItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearExpired), ui.onClearExpired)
	clearAllItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearAll), ui.onClearAll)

	toggleItem := fyne.NewMenuItem(ui.localization.GetText(KeyToggleDark), ui.onToggleTheme)
	toggleItem.Checked = ui.isDark()

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range []string{"en", "zh", "ru"} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), clearExpiredItem, clearAllItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), toggleItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.heading.SetText(IconTimer + " " + ui.localization.GetText(KeyHeading))
	ui.footer.SetText(ui.localization.GetText(KeyFooter))
	ui.form.RefreshTexts()
	ui.statsBar.RefreshTexts()
	for _, row := range ui.rows {
		row.RefreshTexts()
	}
	ui.updateEmptyState(ui.repo.Len(), len(ui.visible))
}

// refreshView recomputes the filtered, sorted view and reconciles the mounted
// rows with it. Rows that leave the view stop their tickers.
func (ui *RootUI) refreshView() {
	all := ui.repo.All()
	now := ui.now()
	view := model.View(all, ui.filter, now)

	ui.statsBar.Update(model.ComputeStats(all, now))
	ui.statsBar.SetVisible(len(all) > 0)

	keep := make(map[int64]bool, len(view))
	objects := make([]fyne.CanvasObject, 0, len(view))
	visible := make([]int64, 0, len(view))
	for _, c := range view {
		row, ok := ui.rows[c.ID]
		if ok {
			row.SetCountdown(c)
		} else {
			row = NewCountdownRow(c, ui.localization, ui.now)
			row.SetCallbacks(ui.onEditCountdown, ui.onDeleteCountdown, ui.onCountdownExpired)
			row.Start()
			ui.rows[c.ID] = row
		}
		keep[c.ID] = true
		objects = append(objects, row)
		visible = append(visible, c.ID)
	}
	for id, row := range ui.rows {
		if !keep[id] {
			row.Stop()
			delete(ui.rows, id)
		}
	}

	ui.visible = visible
	ui.list.Objects = objects
	ui.list.Refresh()
	ui.updateEmptyState(len(all), len(view))

	// The edited record may have been removed
	if id, editing := ui.form.EditingID(); editing {
		if _, ok := ui.repo.Get(id); !ok {
			ui.form.Reset()
		}
	}
}

// updateEmptyState distinguishes an empty collection from an empty filter result
func (ui *RootUI) updateEmptyState(total, shown int) {
	if shown > 0 {
		ui.emptyState.Hide()
		return
	}
	if total == 0 {
		ui.emptyTitle.SetText(ui.localization.GetText(KeyEmptyTitle))
		ui.emptyHint.SetText(ui.localization.GetText(KeyEmptyHint))
	} else {
		ui.emptyTitle.SetText(ui.localization.GetText(KeyNoMatchTitle))
		ui.emptyHint.SetText(ui.localization.GetText(KeyNoMatchHint))
	}
	ui.emptyState.Show()
}

// VisibleIDs returns the ids of the mounted rows in display order
func (ui *RootUI) VisibleIDs() []int64 {
	out := make([]int64, len(ui.visible))
	copy(out, ui.visible)
	return out
}

// handleSubmit creates a countdown, or updates the one being edited
func (ui *RootUI) handleSubmit() {
	in, err := ui.form.Input(ui.location)
	if err != nil {
		ui.notifyError(err)
		return
	}

	if id, editing := ui.form.EditingID(); editing {
		if _, err := ui.repo.Edit(id, in); err != nil {
			ui.notifyError(err)
			return
		}
		ui.form.Reset()
		ui.toasts.Push(ui.localization.GetText(KeyCountdownUpdated), model.ToastSuccess)
		return
	}

	if _, err := ui.repo.Create(in); err != nil {
		ui.notifyError(err)
		return
	}
	ui.form.Reset()
	ui.toasts.Push(ui.localization.GetText(KeyCountdownAdded), model.ToastSuccess)
}

// notifyError shows err as a localized error toast
func (ui *RootUI) notifyError(err error) {
	key := KeyErrGeneric
	switch {
	case errors.Is(err, model.ErrEmptyTitle):
		key = KeyErrEmptyTitle
	case errors.Is(err, model.ErrMissingDate):
		key = KeyErrMissingDate
	case errors.Is(err, model.ErrInvalidDate):
		key = KeyErrInvalidDate
	case errors.Is(err, model.ErrTargetNotInFuture):
		key = KeyErrTargetPast
	case errors.Is(err, model.ErrInvalidPriority):
		key = KeyErrPriority
	case errors.Is(err, store.ErrNotFound):
		key = KeyErrNotFound
	default:
		zlog.Logger.Error().Err(err).Msg("countdown action failed")
	}
	ui.toasts.Push(ui.localization.GetText(key), model.ToastError)
}

// onEditCountdown switches the form into edit mode for c
func (ui *RootUI) onEditCountdown(c model.Countdown) {
	ui.form.StartEdit(c)
}

// onDeleteCountdown removes a countdown after confirmation
func (ui *RootUI) onDeleteCountdown(id int64) {
	ui.confirm(ui.localization.GetText(KeyDelete), ui.localization.GetText(KeyConfirmDelete), func() {
		if err := ui.repo.Remove(id); err != nil {
			ui.notifyError(err)
			return
		}
		zlog.Logger.Info().Int64("id", id).Msg("countdown deleted")
		ui.toasts.Push(ui.localization.GetText(KeyCountdownDeleted), model.ToastSuccess)
	})
}

// onClearExpired removes every expired countdown after confirmation
func (ui *RootUI) onClearExpired() {
	ui.confirm(ui.localization.GetText(KeyClearExpired), ui.localization.GetText(KeyConfirmClearExpired), func() {
		removed, err := ui.repo.RemoveExpired()
		if err != nil {
			ui.notifyError(err)
			return
		}
		zlog.Logger.Info().Int("removed", removed).Msg("expired countdowns cleared")
		ui.toasts.Push(fmt.Sprintf(ui.localization.GetText(KeyClearedExpired), removed), model.ToastSuccess)
	})
}

// onClearAll removes every countdown after confirmation
func (ui *RootUI) onClearAll() {
	ui.confirm(ui.localization.GetText(KeyClearAll), ui.localization.GetText(KeyConfirmClearAll), func() {
		if err := ui.repo.Clear(); err != nil {
			ui.notifyError(err)
			return
		}
		zlog.Logger.Info().Msg("all countdowns cleared")
		ui.toasts.Push(ui.localization.GetText(KeyClearedAll), model.ToastSuccess)
	})
}

// onCountdownExpired is called by a row when its countdown crosses the target
func (ui *RootUI) onCountdownExpired(id int64) {
	zlog.Logger.Debug().Int64("id", id).Msg("countdown expired")
	if ui.settings.GetResortOnExpiry() {
		ui.refreshView()
	}
}

// onFilterChanged applies and remembers the selected filter
func (ui *RootUI) onFilterChanged(f model.Filter) {
	ui.filter = f
	ui.settings.SetFilter(f)
	ui.refreshView()
}

// onToastsChanged redraws the toast layer on the UI thread
func (ui *RootUI) onToastsChanged(toasts []model.Toast) {
	fyne.Do(func() {
		ui.toastLayer.Show(toasts)
	})
}

// onToggleTheme switches between the light and dark variants
func (ui *RootUI) onToggleTheme() {
	if ui.isDark() {
		ui.settings.SetThemeVariant(config.ThemeLight)
	} else {
		ui.settings.SetThemeVariant(config.ThemeDark)
	}
	ui.applyTheme()
	ui.createMenu()
}

// isDark reports whether the effective theme variant is dark
func (ui *RootUI) isDark() bool {
	switch ui.settings.GetThemeVariant() {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return ui.app.Settings().ThemeVariant() == theme.VariantDark
	}
}

// applyTheme installs the theme for the configured variant
func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewCountdownTheme(ui.settings.GetThemeVariant()))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies the stored settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.toasts.SetDuration(ui.settings.GetToastDuration())
	ui.applyTheme()
	ui.refreshUITexts()
	ui.createMenu()
	ui.refreshView()
	ui.toasts.Push(ui.localization.GetText(KeySettingsSaved), model.ToastInfo)
}

// showConfirm asks the user before running a destructive action
func (ui *RootUI) showConfirm(title, message string, onConfirm func()) {
	dialog.ShowConfirm(title, message, func(ok bool) {
		if ok {
			onConfirm()
		}
	}, ui.window)
}

// Shutdown stops every row ticker and toast timer
func (ui *RootUI) Shutdown() {
	for id, row := range ui.rows {
		row.Stop()
		delete(ui.rows, id)
	}
	ui.toasts.Close()
	ui.toastLayer.HideAll()
	zlog.Logger.Info().Msg("root UI shut down")
}
