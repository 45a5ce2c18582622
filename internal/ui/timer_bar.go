package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"

	"github.com/ytget/workout/internal/model"
	"github.com/ytget/workout/internal/rest"
)

// TimerBar is the bottom-anchored rest countdown label shared by all rows
type TimerBar struct {
	localization *Localization

	status    rest.Status
	text      binding.String
	label     *canvas.Text
	container *fyne.Container
}

// NewTimerBar creates a timer bar showing the idle text
func NewTimerBar(localization *Localization) *TimerBar {
	tb := &TimerBar{
		localization: localization,
		status:       rest.Status{State: model.TimerStateIdle, Display: rest.IdleText},
		text:         binding.NewString(),
	}

	tb.label = canvas.NewText("", TimerTextColor)
	tb.label.TextSize = TimerTextSize
	tb.label.TextStyle = fyne.TextStyle{Monospace: true}
	tb.label.Alignment = fyne.TextAlignCenter

	tb.text.AddListener(binding.NewDataListener(func() {
		value, err := tb.text.Get()
		if err != nil {
			log.Printf("Timer text binding error: %v", err)
			return
		}
		tb.label.Text = value
		tb.label.Refresh()
	}))

	background := canvas.NewRectangle(TimerBarColor)
	spacer := canvas.NewRectangle(TimerBarColor)
	spacer.SetMinSize(fyne.NewSize(0, TimerBarBottomPadding))
	tb.container = container.NewStack(background, container.NewVBox(tb.label, spacer))

	tb.SetStatus(tb.status)
	return tb
}

// SetStatus renders a timer status
func (tb *TimerBar) SetStatus(status rest.Status) {
	tb.status = status
	if err := tb.text.Set(tb.displayText(status)); err != nil {
		log.Printf("Failed to set timer text: %v", err)
	}
}

// Text returns the text currently shown
func (tb *TimerBar) Text() string {
	value, _ := tb.text.Get()
	return value
}

// Refresh re-renders the current status, e.g. after a language change
func (tb *TimerBar) Refresh() {
	tb.SetStatus(tb.status)
}

// Container returns the bar for layout
func (tb *TimerBar) Container() fyne.CanvasObject {
	return tb.container
}

// displayText localizes the idle and finished captions; the countdown itself is language-neutral
func (tb *TimerBar) displayText(status rest.Status) string {
	switch status.State {
	case model.TimerStateIdle:
		return tb.localization.GetText(KeyTimerIdle)
	case model.TimerStateFinished:
		return tb.localization.GetText(KeyTimerFinished)
	default:
		return status.Display
	}
}
