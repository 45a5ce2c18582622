package rest

import "time"

// Ticker is a periodic tick source
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tick sources
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Dispatcher runs fn on the thread that owns timer state.
// The UI passes fyne.Do; tests may run fn inline.
type Dispatcher func(fn func())

// SystemClock is backed by time.Ticker
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (st *systemTicker) C() <-chan time.Time {
	return st.ticker.C
}

func (st *systemTicker) Stop() {
	st.ticker.Stop()
}

// Inline runs fn immediately on the calling goroutine
func Inline(fn func()) {
	fn()
}
