package rest

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/workout/internal/model"
)

// Countdown constants
const (
	DefaultDuration = 90 // seconds of rest between sets
	TickInterval    = time.Second
)

// Display texts outside of a running countdown
const (
	IdleText     = "Timer"
	FinishedText = "Start next set!"
)

// Status is a point-in-time copy of the timer
type Status struct {
	State     model.TimerState
	Remaining int // seconds
	Display   string
}

// IsRunning returns true while the countdown is ticking
func (s Status) IsRunning() bool {
	return s.State.IsActive()
}

// FormatRemaining renders seconds as m:ss, e.g. 89 -> "1:29"
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Timer is the rest countdown state machine.
// At most one countdown runs at a time; Start while running is ignored.
type Timer struct {
	mu        sync.Mutex
	state     model.TimerState
	remaining int

	clock    Clock
	dispatch Dispatcher
	onUpdate func(Status) // callback for UI updates

	// tick source of the current run, nil when not running
	ticker Ticker
	stop   chan struct{}
	run    uint64
	closed bool
}

// NewTimer creates an idle timer. A nil clock means SystemClock,
// a nil dispatcher runs ticks on the ticker goroutine.
func NewTimer(clock Clock, dispatch Dispatcher) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	if dispatch == nil {
		dispatch = Inline
	}
	return &Timer{
		state:    model.TimerStateIdle,
		clock:    clock,
		dispatch: dispatch,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (t *Timer) SetUpdateCallback(callback func(Status)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUpdate = callback
}

// Start begins a new countdown from Idle or Finished.
// It returns false if a countdown is already running or the timer is closed.
func (t *Timer) Start() bool {
	t.mu.Lock()
	if t.closed || !t.state.CanStart() {
		t.mu.Unlock()
		return false
	}

	t.state = model.TimerStateRunning
	t.remaining = DefaultDuration
	t.run++

	ticker := t.clock.NewTicker(TickInterval)
	stop := make(chan struct{})
	t.ticker = ticker
	t.stop = stop

	status := t.statusLocked()
	callback := t.onUpdate
	run := t.run
	t.mu.Unlock()

	go t.loop(run, ticker, stop)

	log.Printf("Rest timer started: %d seconds", DefaultDuration)
	if callback != nil {
		callback(status)
	}
	return true
}

// Tick advances the running countdown by one second.
// It is a no-op unless the timer is running.
func (t *Timer) Tick() {
	t.mu.Lock()
	run := t.run
	t.mu.Unlock()
	t.advance(run)
}

// Close releases the tick source. The timer never ticks or starts again.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.releaseLocked()
	t.onUpdate = nil
}

// Snapshot returns the current timer status
func (t *Timer) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

// DisplayText returns the label for the current state
func (t *Timer) DisplayText() string {
	return t.Snapshot().Display
}

// loop forwards ticks of one run to the dispatcher until the run is released
func (t *Timer) loop(run uint64, ticker Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			t.dispatch(func() { t.advance(run) })
		}
	}
}

// advance decrements the countdown of the given run.
// Ticks from a stale run, or after close, are dropped.
func (t *Timer) advance(run uint64) {
	t.mu.Lock()
	if t.closed || run != t.run || t.state != model.TimerStateRunning {
		t.mu.Unlock()
		return
	}

	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = model.TimerStateFinished
		t.releaseLocked()
		log.Printf("Rest timer finished")
	}

	status := t.statusLocked()
	callback := t.onUpdate
	t.mu.Unlock()

	if callback != nil {
		callback(status)
	}
}

// releaseLocked stops the ticker of the current run, if any
func (t *Timer) releaseLocked() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.stop)
	t.ticker = nil
	t.stop = nil
}

func (t *Timer) statusLocked() Status {
	status := Status{
		State:     t.state,
		Remaining: t.remaining,
	}
	switch t.state {
	case model.TimerStateRunning:
		status.Display = FormatRemaining(t.remaining)
	case model.TimerStateFinished:
		status.Display = FinishedText
	default:
		status.Display = IdleText
	}
	return status
}
