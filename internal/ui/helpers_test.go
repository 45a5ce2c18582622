package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/workout/internal/rest"
	"github.com/ytget/workout/internal/workout"
)

// stillTicker never fires; tests advance the rest timer with Tick
type stillTicker struct {
	c chan time.Time
}

func (st *stillTicker) C() <-chan time.Time { return st.c }
func (st *stillTicker) Stop()               {}

type stillClock struct{}

func (stillClock) NewTicker(time.Duration) rest.Ticker {
	return &stillTicker{c: make(chan time.Time)}
}

// newTestScreen builds a screen in a test window around a hand-driven timer
func newTestScreen(t *testing.T) (*WorkoutScreen, *workout.Session, *rest.Timer, fyne.Window) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")

	timer := rest.NewTimer(stillClock{}, rest.Inline)
	session := workout.NewSession(timer)
	screen := NewWorkoutScreen(window, app, session)
	t.Cleanup(screen.Close)

	return screen, session, timer, window
}
