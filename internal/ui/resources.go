package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "workout.png"
)

// LoadAppIcon loads the window icon from the working directory.
// Packaged builds embed the icon through fyne package instead.
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
