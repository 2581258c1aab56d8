package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// DeviceLayout arranges the form and the list for the current device: side by
// side on desktops and landscape phones, stacked on portrait phones
type DeviceLayout struct {
	device fyne.Device
}

// NewDeviceLayout creates a layout helper for device
func NewDeviceLayout(device fyne.Device) *DeviceLayout {
	return &DeviceLayout{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (d *DeviceLayout) IsMobileDevice() bool {
	return d.device != nil && d.device.IsMobile()
}

// IsPortrait returns true if device is in portrait orientation
func (d *DeviceLayout) IsPortrait() bool {
	if d.device == nil {
		return false
	}
	orientation := d.device.Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// Stacked reports whether the form goes above the list
func (d *DeviceLayout) Stacked() bool {
	return d.IsMobileDevice() && d.IsPortrait()
}

// Arrange places form and list according to the device
func (d *DeviceLayout) Arrange(form, list fyne.CanvasObject) *container.Split {
	if d.Stacked() {
		split := container.NewVSplit(form, list)
		split.Offset = StackedSplitOffset
		return split
	}
	split := container.NewHSplit(form, list)
	split.Offset = SplitOffset
	return split
}
