package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countdown-tracker/internal/model"
)

// ToastLayer draws queued toasts stacked in the top-right corner. It is meant
// to sit above the window content in a Stack; only the toast cards take part
// in hit testing, so taps elsewhere reach the content underneath.
type ToastLayer struct {
	content   *fyne.Container
	items     map[string]fyne.CanvasObject
	order     []string
	onDismiss func(id string)
}

// NewToastLayer creates an empty layer. onDismiss is called with the id of a
// toast whose close button was tapped.
func NewToastLayer(onDismiss func(id string)) *ToastLayer {
	return &ToastLayer{
		content:   container.New(&toastStackLayout{}),
		items:     make(map[string]fyne.CanvasObject),
		onDismiss: onDismiss,
	}
}

// Container returns the overlay to stack above the window content
func (tl *ToastLayer) Container() fyne.CanvasObject {
	return tl.content
}

// Show reconciles the drawn toasts with toasts. Toasts are only ever removed
// here, when the queue no longer holds them. Must run on the UI thread.
func (tl *ToastLayer) Show(toasts []model.Toast) {
	live := make(map[string]bool, len(toasts))
	order := make([]string, 0, len(toasts))
	objects := make([]fyne.CanvasObject, 0, len(toasts))
	for _, t := range toasts {
		item, ok := tl.items[t.ID]
		if !ok {
			item = tl.newToast(t)
			tl.items[t.ID] = item
		}
		live[t.ID] = true
		order = append(order, t.ID)
		objects = append(objects, item)
	}

	for id := range tl.items {
		if !live[id] {
			delete(tl.items, id)
		}
	}

	tl.order = order
	tl.content.Objects = objects
	tl.content.Refresh()
}

// Visible returns the ids of the drawn toasts, top first
func (tl *ToastLayer) Visible() []string {
	out := make([]string, len(tl.order))
	copy(out, tl.order)
	return out
}

// HideAll removes every toast
func (tl *ToastLayer) HideAll() {
	tl.Show(nil)
}

// newToast builds the card of a single toast
func (tl *ToastLayer) newToast(t model.Toast) fyne.CanvasObject {
	message := widget.NewLabel(t.Message)
	message.Truncation = fyne.TextTruncateEllipsis
	message.Importance = toastImportance(t.Kind)

	id := t.ID
	closeBtn := widget.NewButton(IconClose, func() {
		if tl.onDismiss != nil {
			tl.onDismiss(id)
		}
	})
	closeBtn.Importance = widget.LowImportance

	body := container.NewBorder(nil, nil, widget.NewIcon(toastIcon(t.Kind)), closeBtn, message)
	return widget.NewCard("", "", body)
}

// toastStackLayout places each object at toast size in a column anchored to
// the top-right corner. It asks for no space of its own.
type toastStackLayout struct{}

func (l *toastStackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	x := size.Width - ToastWidth - ToastMargin
	if x < 0 {
		x = 0
	}
	y := ToastMargin
	for _, o := range objects {
		o.Resize(fyne.NewSize(ToastWidth, ToastHeight))
		o.Move(fyne.NewPos(x, y))
		y += ToastHeight + ToastSpacing
	}
}

func (l *toastStackLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

func toastIcon(kind model.ToastKind) fyne.Resource {
	switch kind {
	case model.ToastSuccess:
		return theme.ConfirmIcon()
	case model.ToastError:
		return theme.ErrorIcon()
	default:
		return theme.InfoIcon()
	}
}

func toastImportance(kind model.ToastKind) widget.Importance {
	switch kind {
	case model.ToastSuccess:
		return widget.SuccessImportance
	case model.ToastError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
