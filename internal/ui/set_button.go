package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SetButton is one of the five set selectors of an exercise row
type SetButton struct {
	widget.Button

	number   int
	selected bool
	minSize  fyne.Size
}

// NewSetButton creates a set button labelled with its number
func NewSetButton(number int, onTapped func(number int)) *SetButton {
	b := &SetButton{number: number}
	b.Text = strconv.Itoa(number)
	b.OnTapped = func() {
		if onTapped != nil {
			onTapped(b.number)
		}
	}
	b.Importance = widget.MediumImportance
	b.ExtendBaseWidget(b)
	return b
}

// Number returns the set number shown on the button
func (b *SetButton) Number() int {
	return b.number
}

// IsSelected reports whether the button is highlighted
func (b *SetButton) IsSelected() bool {
	return b.selected
}

// SetSelected highlights the button in red when selected
func (b *SetButton) SetSelected(selected bool) {
	if b.selected == selected {
		return
	}
	b.selected = selected
	if selected {
		b.Importance = widget.DangerImportance
	} else {
		b.Importance = widget.MediumImportance
	}
	b.Refresh()
}

// MinSize keeps the button square and large enough to tap
func (b *SetButton) MinSize() fyne.Size {
	return b.Button.MinSize().Max(b.minSize)
}

// SetMinSize sets the lower bound for MinSize
func (b *SetButton) SetMinSize(size fyne.Size) {
	b.minSize = size
	b.Refresh()
}
