package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TappableLabel is a label that reports taps, used to focus a row's weight entry
type TappableLabel struct {
	widget.Label
	onTapped func()
}

// NewTappableLabel creates a new tappable label
func NewTappableLabel(text string, onTapped func()) *TappableLabel {
	l := &TappableLabel{onTapped: onTapped}
	l.Text = text
	l.ExtendBaseWidget(l)
	return l
}

// Tapped handles tap and click events
func (l *TappableLabel) Tapped(*fyne.PointEvent) {
	if l.onTapped != nil {
		l.onTapped()
	}
}
