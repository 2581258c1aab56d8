package ui

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countdown-tracker/internal/model"
)

// DefaultFormTime is the time entry's initial value
const DefaultFormTime = "00:00"

// CountdownForm collects the title, target and priority of a countdown. It
// is used for both creating and editing.
type CountdownForm struct {
	localization *Localization

	heading       *widget.Label
	titleCaption  *widget.Label
	dateCaption   *widget.Label
	timeCaption   *widget.Label
	prioCaption   *widget.Label
	titleEntry    *widget.Entry
	dateEntry     *widget.Entry
	timeEntry     *widget.Entry
	priorityRadio *widget.RadioGroup
	submitBtn     *widget.Button
	cancelBtn     *widget.Button
	content       *widget.Card

	priority  model.Priority
	editingID int64
	editing   bool

	onSubmit func()
	onCancel func()
}

// NewCountdownForm creates the form in "add" mode
func NewCountdownForm(localization *Localization) *CountdownForm {
	f := &CountdownForm{
		localization: localization,
		priority:     model.DefaultPriority,
	}
	f.createUI()
	f.Reset()
	return f
}

// SetCallbacks sets the submit and cancel callbacks
func (f *CountdownForm) SetCallbacks(onSubmit func(), onCancel func()) {
	f.onSubmit = onSubmit
	f.onCancel = onCancel
}

// Container returns the form's root object
func (f *CountdownForm) Container() fyne.CanvasObject {
	return f.content
}

// createUI creates the form widgets
func (f *CountdownForm) createUI() {
	f.heading = widget.NewLabel("")
	f.heading.TextStyle = fyne.TextStyle{Bold: true}
	f.heading.SizeName = theme.SizeNameSubHeadingText

	f.titleCaption = widget.NewLabel("")
	f.dateCaption = widget.NewLabel("")
	f.timeCaption = widget.NewLabel("")
	f.prioCaption = widget.NewLabel("")

	f.titleEntry = widget.NewEntry()
	f.titleEntry.OnSubmitted = func(string) { f.Submit() }

	f.dateEntry = widget.NewEntry()
	f.dateEntry.SetPlaceHolder(model.DateLayout)
	f.dateEntry.OnSubmitted = func(string) { f.Submit() }

	f.timeEntry = widget.NewEntry()
	f.timeEntry.SetPlaceHolder(model.TimeLayout)
	f.timeEntry.OnSubmitted = func(string) { f.Submit() }

	f.priorityRadio = widget.NewRadioGroup(nil, func(selected string) {
		for _, p := range model.Priorities() {
			if priorityText(f.localization, p) == selected {
				f.priority = p
				return
			}
		}
	})
	f.priorityRadio.Horizontal = true
	f.priorityRadio.Required = true

	f.submitBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), f.Submit)
	f.submitBtn.Importance = widget.HighImportance

	f.cancelBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		f.Reset()
		if f.onCancel != nil {
			f.onCancel()
		}
	})
	f.cancelBtn.Hide()

	when := container.NewGridWithColumns(2,
		container.NewVBox(f.dateCaption, f.dateEntry),
		container.NewVBox(f.timeCaption, f.timeEntry),
	)

	f.content = widget.NewCard("", "", container.NewVBox(
		f.heading,
		f.titleCaption,
		f.titleEntry,
		when,
		f.prioCaption,
		f.priorityRadio,
		container.NewGridWithColumns(2, f.submitBtn, f.cancelBtn),
	))

	f.RefreshTexts()
}

// RefreshTexts re-applies localized strings after a language change
func (f *CountdownForm) RefreshTexts() {
	if f.editing {
		f.heading.SetText(f.localization.GetText(KeyEditCountdown))
		f.submitBtn.SetText(f.localization.GetText(KeyUpdate))
	} else {
		f.heading.SetText(f.localization.GetText(KeyAddCountdown))
		f.submitBtn.SetText(f.localization.GetText(KeySubmit))
	}
	f.cancelBtn.SetText(f.localization.GetText(KeyCancel))
	f.titleCaption.SetText(f.localization.GetText(KeyTitleLabel))
	f.dateCaption.SetText(f.localization.GetText(KeyDateLabel))
	f.timeCaption.SetText(f.localization.GetText(KeyTimeLabel))
	f.prioCaption.SetText(f.localization.GetText(KeyPriorityLabel))
	f.titleEntry.SetPlaceHolder(f.localization.GetText(KeyTitlePlaceholder))

	options := make([]string, 0, len(model.Priorities()))
	for _, p := range model.Priorities() {
		options = append(options, priorityText(f.localization, p))
	}
	current := f.priority
	f.priorityRadio.Options = options
	f.priorityRadio.SetSelected(priorityText(f.localization, current))
	f.priorityRadio.Refresh()
}

// Reset clears the form and leaves edit mode
func (f *CountdownForm) Reset() {
	f.editing = false
	f.editingID = 0
	f.titleEntry.SetText("")
	f.dateEntry.SetText("")
	f.timeEntry.SetText(DefaultFormTime)
	f.priority = model.DefaultPriority
	f.cancelBtn.Hide()
	f.RefreshTexts()
}

// StartEdit fills the form from c and switches to edit mode
func (f *CountdownForm) StartEdit(c model.Countdown) {
	f.editing = true
	f.editingID = c.ID

	date, clock := model.FormatTargetParts(c.TargetDate.Local())
	f.titleEntry.SetText(c.Title)
	f.dateEntry.SetText(date)
	f.timeEntry.SetText(clock)
	f.priority = c.Priority
	if !f.priority.IsValid() {
		f.priority = model.DefaultPriority
	}
	f.cancelBtn.Show()
	f.RefreshTexts()
}

// EditingID returns the id being edited, if the form is in edit mode
func (f *CountdownForm) EditingID() (int64, bool) {
	return f.editingID, f.editing
}

// SetValues fills the entries directly
func (f *CountdownForm) SetValues(title, date, clock string, priority model.Priority) {
	f.titleEntry.SetText(title)
	f.dateEntry.SetText(date)
	f.timeEntry.SetText(clock)
	f.priority = priority
	f.RefreshTexts()
}

// Input converts the entries into a CountdownInput. Only a malformed date or
// time is reported here, and only once the title is filled in; otherwise
// Target stays zero so the store reports the title first.
func (f *CountdownForm) Input(loc *time.Location) (model.CountdownInput, error) {
	var target time.Time
	if strings.TrimSpace(f.dateEntry.Text) != "" {
		parsed, err := model.ParseTarget(f.dateEntry.Text, f.timeEntry.Text, loc)
		if err != nil && strings.TrimSpace(f.titleEntry.Text) != "" {
			return model.CountdownInput{}, err
		}
		target = parsed
	}
	return model.CountdownInput{
		Title:    f.titleEntry.Text,
		Target:   target,
		Priority: f.priority,
	}, nil
}

// Submit forwards the form to the submit callback
func (f *CountdownForm) Submit() {
	if f.onSubmit != nil {
		f.onSubmit()
	}
}
