package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/countdown-tracker/internal/model"
)

// toastCloseButton digs the close button out of a drawn toast card
func toastCloseButton(t *testing.T, layer *ToastLayer, id string) *widget.Button {
	t.Helper()
	card, ok := layer.items[id].(*widget.Card)
	require.True(t, ok)
	body, ok := card.Content.(*fyne.Container)
	require.True(t, ok)
	for _, obj := range body.Objects {
		if btn, ok := obj.(*widget.Button); ok {
			return btn
		}
	}
	t.Fatalf("toast %s has no close button", id)
	return nil
}

func TestToastLayerReconciles(t *testing.T) {
	test.NewApp()
	layer := NewToastLayer(nil)

	first := model.Toast{ID: "a", Message: "one", Kind: model.ToastSuccess}
	second := model.Toast{ID: "b", Message: "two", Kind: model.ToastError}

	layer.Show([]model.Toast{first, second})
	assert.Equal(t, []string{"a", "b"}, layer.Visible())
	cardB := layer.items["b"]

	layer.Show([]model.Toast{second})
	assert.Equal(t, []string{"b"}, layer.Visible())
	assert.Same(t, cardB, layer.items["b"])
	assert.Len(t, layer.content.Objects, 1)

	layer.HideAll()
	assert.Empty(t, layer.Visible())
	assert.Empty(t, layer.items)
	assert.Empty(t, layer.content.Objects)
}

func TestToastLayerStacksTopRight(t *testing.T) {
	l := &toastStackLayout{}
	a, b := widget.NewLabel("a"), widget.NewLabel("b")

	l.Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(800, 600))

	assert.Equal(t, fyne.NewPos(800-ToastWidth-ToastMargin, ToastMargin), a.Position())
	assert.Equal(t, fyne.NewPos(800-ToastWidth-ToastMargin, ToastMargin+ToastHeight+ToastSpacing), b.Position())
	assert.Equal(t, fyne.NewSize(ToastWidth, ToastHeight), a.Size())
	assert.Equal(t, fyne.NewSize(0, 0), l.MinSize([]fyne.CanvasObject{a, b}))
}

func TestToastLayerDismiss(t *testing.T) {
	test.NewApp()
	var dismissed []string
	layer := NewToastLayer(func(id string) { dismissed = append(dismissed, id) })

	layer.Show([]model.Toast{{ID: "a", Message: "one", Kind: model.ToastInfo}})
	test.Tap(toastCloseButton(t, layer, "a"))

	assert.Equal(t, []string{"a"}, dismissed)
	// Removal is driven by the queue, not by the tap
	assert.Equal(t, []string{"a"}, layer.Visible())
}

func TestToastStyling(t *testing.T) {
	assert.Equal(t, widget.DangerImportance, toastImportance(model.ToastError))
	assert.Equal(t, widget.SuccessImportance, toastImportance(model.ToastSuccess))
	assert.Equal(t, widget.MediumImportance, toastImportance(model.ToastInfo))
	assert.Equal(t, theme.ErrorIcon(), toastIcon(model.ToastError))
}
