package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countdown-tracker/internal/model"
)

// StatsBar shows collection counts, the filter buttons and the bulk actions
type StatsBar struct {
	localization *Localization

	totalValue   *widget.Label
	activeValue  *widget.Label
	expiredValue *widget.Label
	totalLabel   *widget.Label
	activeLabel  *widget.Label
	expiredLabel *widget.Label
	filterTitle  *widget.Label

	filterButtons   map[model.Filter]*widget.Button
	clearExpiredBtn *widget.Button
	clearAllBtn     *widget.Button
	content         *fyne.Container

	current model.Filter

	onFilter       func(model.Filter)
	onClearExpired func()
	onClearAll     func()
}

// NewStatsBar creates the bar with the given filter selected
func NewStatsBar(localization *Localization, current model.Filter) *StatsBar {
	sb := &StatsBar{
		localization:  localization,
		filterButtons: make(map[model.Filter]*widget.Button),
		current:       current,
	}
	sb.createUI()
	return sb
}

// SetCallbacks sets the filter and bulk action callbacks
func (sb *StatsBar) SetCallbacks(onFilter func(model.Filter), onClearExpired func(), onClearAll func()) {
	sb.onFilter = onFilter
	sb.onClearExpired = onClearExpired
	sb.onClearAll = onClearAll
}

// Container returns the bar's root object
func (sb *StatsBar) Container() fyne.CanvasObject {
	return sb.content
}

// createUI creates the bar widgets
func (sb *StatsBar) createUI() {
	newValue := func(importance widget.Importance) *widget.Label {
		l := widget.NewLabel("0")
		l.Alignment = fyne.TextAlignCenter
		l.TextStyle = fyne.TextStyle{Bold: true}
		l.SizeName = theme.SizeNameSubHeadingText
		l.Importance = importance
		return l
	}
	newCaption := func() *widget.Label {
		l := widget.NewLabel("")
		l.Alignment = fyne.TextAlignCenter
		l.SizeName = theme.SizeNameCaptionText
		return l
	}

	sb.totalValue, sb.totalLabel = newValue(widget.HighImportance), newCaption()
	sb.activeValue, sb.activeLabel = newValue(widget.SuccessImportance), newCaption()
	sb.expiredValue, sb.expiredLabel = newValue(widget.LowImportance), newCaption()

	counts := container.NewGridWithColumns(3,
		container.NewVBox(sb.totalValue, sb.totalLabel),
		container.NewVBox(sb.activeValue, sb.activeLabel),
		container.NewVBox(sb.expiredValue, sb.expiredLabel),
	)

	sb.filterTitle = widget.NewLabel("")
	sb.filterTitle.TextStyle = fyne.TextStyle{Bold: true}

	stateFilters := container.NewHBox()
	priorityFilters := container.NewHBox()
	for _, f := range model.Filters() {
		filter := f // Capture for closure
		btn := widget.NewButton("", func() {
			sb.Select(filter)
			if sb.onFilter != nil {
				sb.onFilter(filter)
			}
		})
		sb.filterButtons[filter] = btn
		switch filter {
		case model.FilterHigh, model.FilterMedium, model.FilterLow:
			priorityFilters.Add(btn)
		default:
			stateFilters.Add(btn)
		}
	}

	sb.clearExpiredBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		if sb.onClearExpired != nil {
			sb.onClearExpired()
		}
	})
	sb.clearExpiredBtn.Importance = widget.DangerImportance

	sb.clearAllBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if sb.onClearAll != nil {
			sb.onClearAll()
		}
	})

	sb.content = container.NewVBox(
		widget.NewCard("", "", counts),
		widget.NewCard("", "", container.NewVBox(
			container.NewBorder(nil, nil, widget.NewIcon(theme.SearchIcon()), nil, sb.filterTitle),
			container.NewHBox(stateFilters, widget.NewSeparator(), priorityFilters),
		)),
		container.NewHBox(layout.NewSpacer(), sb.clearExpiredBtn, sb.clearAllBtn),
	)

	sb.RefreshTexts()
	sb.Select(sb.current)
}

// Update shows new counts
func (sb *StatsBar) Update(stats model.Stats) {
	sb.totalValue.SetText(strconv.Itoa(stats.Total))
	sb.activeValue.SetText(strconv.Itoa(stats.Active))
	sb.expiredValue.SetText(strconv.Itoa(stats.Expired))
}

// Select highlights the button of f
func (sb *StatsBar) Select(f model.Filter) {
	sb.current = f
	for filter, btn := range sb.filterButtons {
		if filter == f {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}

// SetVisible shows or hides the whole bar. It is hidden while there are no
// countdowns.
func (sb *StatsBar) SetVisible(visible bool) {
	if visible {
		sb.content.Show()
		return
	}
	sb.content.Hide()
}

// Visible reports whether the bar is shown
func (sb *StatsBar) Visible() bool {
	return sb.content.Visible()
}

// Selected returns the highlighted filter
func (sb *StatsBar) Selected() model.Filter {
	return sb.current
}

// RefreshTexts re-applies localized strings after a language change
func (sb *StatsBar) RefreshTexts() {
	sb.totalLabel.SetText(sb.localization.GetText(KeyStatTotal))
	sb.activeLabel.SetText(sb.localization.GetText(KeyStatActive))
	sb.expiredLabel.SetText(sb.localization.GetText(KeyStatExpired))
	sb.filterTitle.SetText(sb.localization.GetText(KeyFilterTitle))
	sb.clearExpiredBtn.SetText(sb.localization.GetText(KeyClearExpired))
	sb.clearAllBtn.SetText(sb.localization.GetText(KeyClearAll))
	for filter, btn := range sb.filterButtons {
		btn.SetText(filterText(sb.localization, filter))
	}
}

// filterText returns the localized button label of f
func filterText(l *Localization, f model.Filter) string {
	switch f {
	case model.FilterActive:
		return l.GetText(KeyFilterActive)
	case model.FilterExpired:
		return l.GetText(KeyFilterExpired)
	case model.FilterHigh:
		return l.GetText(KeyFilterHigh)
	case model.FilterMedium:
		return l.GetText(KeyFilterMedium)
	case model.FilterLow:
		return l.GetText(KeyFilterLow)
	default:
		return l.GetText(KeyFilterAll)
	}
}
