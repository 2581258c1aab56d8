package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// fakeDevice overrides the parts of fyne.Device the layout reads
type fakeDevice struct {
	fyne.Device
	mobile      bool
	orientation fyne.DeviceOrientation
}

func (f fakeDevice) IsMobile() bool                      { return f.mobile }
func (f fakeDevice) Orientation() fyne.DeviceOrientation { return f.orientation }

func TestDeviceLayoutArrange(t *testing.T) {
	tests := []struct {
		name       string
		device     fyne.Device
		stacked    bool
		horizontal bool
	}{
		{"No device", nil, false, true},
		{"Desktop", fakeDevice{mobile: false, orientation: fyne.OrientationVertical}, false, true},
		{"Phone portrait", fakeDevice{mobile: true, orientation: fyne.OrientationVertical}, true, false},
		{"Phone upside down", fakeDevice{mobile: true, orientation: fyne.OrientationVerticalUpsideDown}, true, false},
		{"Phone landscape", fakeDevice{mobile: true, orientation: fyne.OrientationHorizontalLeft}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeviceLayout(tt.device)
			if got := d.Stacked(); got != tt.stacked {
				t.Errorf("Stacked() = %v, want %v", got, tt.stacked)
			}

			split := d.Arrange(widget.NewLabel("form"), widget.NewLabel("list"))
			if split.Horizontal != tt.horizontal {
				t.Errorf("Horizontal = %v, want %v", split.Horizontal, tt.horizontal)
			}
			want := SplitOffset
			if tt.stacked {
				want = StackedSplitOffset
			}
			if split.Offset != want {
				t.Errorf("Offset = %v, want %v", split.Offset, want)
			}
		})
	}
}
