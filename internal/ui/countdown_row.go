package ui

import (
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/wb-go/wbf/zlog"

	"github.com/ytget/countdown-tracker/internal/model"
)

// CountdownRow renders one countdown and refreshes its remaining time once
// per second while mounted
type CountdownRow struct {
	widget.BaseWidget

	mu           sync.Mutex
	countdown    model.Countdown
	expired      bool
	localization *Localization
	now          func() time.Time

	// UI components
	titleLabel    *widget.Label
	priorityLabel *widget.Label
	targetLabel   *widget.Label
	expiredLabel  *widget.Label
	valueLabels   [4]*widget.Label
	unitLabels    [4]*widget.Label
	remainingGrid *fyne.Container
	editBtn       *widget.Button
	deleteBtn     *widget.Button
	content       fyne.CanvasObject

	// Callbacks
	onEdit    func(c model.Countdown)
	onDelete  func(id int64)
	onExpired func(id int64)

	// Ticker lifecycle
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCountdownRow creates a row for c. The row does not tick until Start.
func NewCountdownRow(c model.Countdown, localization *Localization, now func() time.Time) *CountdownRow {
	if now == nil {
		now = time.Now
	}

	row := &CountdownRow{
		countdown:    c,
		expired:      c.IsExpired(now()),
		localization: localization,
		now:          now,
	}
	row.ExtendBaseWidget(row)
	row.createUI()
	row.updateFromCountdown()
	return row
}

// SetCallbacks sets the action callbacks
func (r *CountdownRow) SetCallbacks(onEdit func(model.Countdown), onDelete func(int64), onExpired func(int64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEdit = onEdit
	r.onDelete = onDelete
	r.onExpired = onExpired
}

// Countdown returns the record the row currently shows
func (r *CountdownRow) Countdown() model.Countdown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countdown
}

// SetCountdown replaces the shown record, e.g. after an edit
func (r *CountdownRow) SetCountdown(c model.Countdown) {
	r.mu.Lock()
	r.countdown = c
	r.expired = c.IsExpired(r.now())
	r.mu.Unlock()

	r.updateFromCountdown()
}

// Start begins the once-per-second refresh. Calling Start twice is a no-op.
func (r *CountdownRow) Start() {
	r.mu.Lock()
	if r.stop != nil {
		r.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	r.stop = stop
	r.mu.Unlock()

	go func() {
		ticker := time.NewTicker(RowRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(r.Tick)
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancels the refresh ticker. It is safe to call more than once.
func (r *CountdownRow) Stop() {
	r.mu.Lock()
	stop := r.stop
	r.mu.Unlock()

	if stop == nil {
		return
	}
	r.stopOnce.Do(func() {
		close(stop)
		zlog.Logger.Debug().Int64("id", r.Countdown().ID).Msg("countdown row ticker stopped")
	})
}

// Tick re-evaluates the remaining time. When the countdown has just crossed
// its target, the expiry callback fires once.
func (r *CountdownRow) Tick() {
	r.mu.Lock()
	becameExpired := !r.expired && r.countdown.IsExpired(r.now())
	if becameExpired {
		r.expired = true
	}
	id := r.countdown.ID
	callback := r.onExpired
	r.mu.Unlock()

	r.updateFromCountdown()

	if becameExpired && callback != nil {
		callback(id)
	}
}

// CreateRenderer implements fyne.Widget
func (r *CountdownRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// RefreshTexts re-applies localized strings after a language change
func (r *CountdownRow) RefreshTexts() {
	r.editBtn.SetText(r.localization.GetText(KeyEdit))
	r.deleteBtn.SetText(r.localization.GetText(KeyDelete))
	r.updateFromCountdown()
}

// createUI creates the UI components
func (r *CountdownRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.priorityLabel = widget.NewLabel("")
	r.targetLabel = widget.NewLabel("")
	r.targetLabel.SizeName = theme.SizeNameCaptionText

	r.expiredLabel = widget.NewLabel("")
	r.expiredLabel.Importance = widget.LowImportance

	cells := make([]fyne.CanvasObject, 0, len(r.valueLabels))
	for i := range r.valueLabels {
		r.valueLabels[i] = widget.NewLabel("0")
		r.valueLabels[i].Alignment = fyne.TextAlignCenter
		r.valueLabels[i].TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		r.valueLabels[i].Importance = widget.HighImportance

		r.unitLabels[i] = widget.NewLabel("")
		r.unitLabels[i].Alignment = fyne.TextAlignCenter
		r.unitLabels[i].SizeName = theme.SizeNameCaptionText

		cells = append(cells, container.NewVBox(r.valueLabels[i], r.unitLabels[i]))
	}
	r.remainingGrid = container.NewGridWithColumns(len(cells), cells...)

	r.editBtn = widget.NewButtonWithIcon(r.localization.GetText(KeyEdit), theme.DocumentCreateIcon(), func() {
		r.mu.Lock()
		c, callback := r.countdown, r.onEdit
		r.mu.Unlock()
		if callback != nil {
			callback(c)
		}
	})
	r.editBtn.Importance = widget.LowImportance

	r.deleteBtn = widget.NewButtonWithIcon(r.localization.GetText(KeyDelete), theme.DeleteIcon(), func() {
		r.mu.Lock()
		id, callback := r.countdown.ID, r.onDelete
		r.mu.Unlock()
		if callback != nil {
			callback(id)
		}
	})
	r.deleteBtn.Importance = widget.DangerImportance

	header := container.NewBorder(nil, nil,
		widget.NewIcon(theme.HistoryIcon()),
		container.NewHBox(r.priorityLabel, r.editBtn, r.deleteBtn),
		r.titleLabel,
	)

	r.content = widget.NewCard("", "", container.NewVBox(
		header,
		r.targetLabel,
		container.NewStack(r.remainingGrid, r.expiredLabel),
	))
}

// updateFromCountdown updates UI components based on the record and clock
func (r *CountdownRow) updateFromCountdown() {
	r.mu.Lock()
	c := r.countdown
	remaining := c.Remaining(r.now())
	r.mu.Unlock()

	r.titleLabel.SetText(c.Title)
	r.priorityLabel.Importance = priorityImportance(c.Priority)
	r.priorityLabel.SetText(priorityText(r.localization, c.Priority))
	r.targetLabel.SetText(r.localization.GetText(KeyTargetTime) + ": " + c.TargetDate.Local().Format(TargetTimeLayout))

	if remaining.Expired {
		r.titleLabel.Importance = widget.LowImportance
		r.titleLabel.Refresh()
		r.expiredLabel.SetText(r.localization.GetText(KeyExpired))
		r.expiredLabel.Show()
		r.remainingGrid.Hide()
		return
	}

	r.titleLabel.Importance = widget.MediumImportance
	r.titleLabel.Refresh()
	r.expiredLabel.Hide()
	r.remainingGrid.Show()

	values := [4]int64{remaining.Days, remaining.Hours, remaining.Minutes, remaining.Seconds}
	units := [4]string{KeyDays, KeyHours, KeyMinutes, KeySeconds}
	for i := range values {
		r.valueLabels[i].SetText(strconv.FormatInt(values[i], 10))
		r.unitLabels[i].SetText(r.localization.GetText(units[i]))
	}
}

// priorityImportance maps a priority to the label colour used for its badge
func priorityImportance(p model.Priority) widget.Importance {
	switch p {
	case model.PriorityHigh:
		return widget.DangerImportance
	case model.PriorityLow:
		return widget.SuccessImportance
	default:
		return widget.WarningImportance
	}
}

// priorityText returns the localized name of p, medium for unknown values
func priorityText(l *Localization, p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return l.GetText(KeyPriorityHigh)
	case model.PriorityLow:
		return l.GetText(KeyPriorityLow)
	default:
		return l.GetText(KeyPriorityMedium)
	}
}
