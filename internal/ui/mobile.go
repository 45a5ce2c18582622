package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific sizing for touch targets
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	if m.app == nil || m.app.Driver() == nil {
		return false
	}
	return m.app.Driver().Device().IsMobile()
}

// SetButtonSize returns the square size of a set selector button
func (m *MobileUI) SetButtonSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(MobileSetButtonSize, MobileSetButtonSize)
	}
	return fyne.NewSize(SetButtonSize, SetButtonSize)
}

// WeightEntrySize returns the minimum size of a weight entry
func (m *MobileUI) WeightEntrySize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(WeightEntryWidth, MinTouchTargetSize)
	}
	return fyne.NewSize(WeightEntryWidth, 0)
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}
