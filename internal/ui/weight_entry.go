package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout/internal/workout"
)

// WeightEntry is a single-line entry for a weight value.
// It asks mobile platforms for the numeric keypad and reports focus loss.
type WeightEntry struct {
	widget.Entry

	minSize     fyne.Size
	onFocusLost func()
}

// NewWeightEntry creates a weight entry that validates its text as a weight
func NewWeightEntry(placeholder string) *WeightEntry {
	e := &WeightEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder(placeholder)
	e.Validator = func(text string) error {
		_, err := workout.ParseWeight(text)
		return err
	}
	return e
}

// Keyboard selects the numeric keypad on mobile devices
func (e *WeightEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// FocusLost commits or discards the edit when the user leaves the entry
func (e *WeightEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocusLost != nil {
		e.onFocusLost()
	}
}

// MinSize widens the entry so typical weights fit
func (e *WeightEntry) MinSize() fyne.Size {
	return e.Entry.MinSize().Max(e.minSize)
}

// SetMinSize sets the lower bound for MinSize
func (e *WeightEntry) SetMinSize(size fyne.Size) {
	e.minSize = size
	e.Refresh()
}
