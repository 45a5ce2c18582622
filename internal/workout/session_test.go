package workout

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/ytget/workout/internal/model"
	"github.com/ytget/workout/internal/rest"
)

// idleClock hands out tickers that never fire; tests advance the timer by hand
type idleClock struct {
	mu    sync.Mutex
	count int
}

type idleTicker struct {
	c chan time.Time
}

func (it *idleTicker) C() <-chan time.Time { return it.c }
func (it *idleTicker) Stop()               {}

func (ic *idleClock) NewTicker(time.Duration) rest.Ticker {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.count++
	return &idleTicker{c: make(chan time.Time)}
}

func newTestSession(t *testing.T) (*Session, *rest.Timer, *idleClock) {
	t.Helper()
	clock := &idleClock{}
	timer := rest.NewTimer(clock, rest.Inline)
	session := NewSession(timer)
	t.Cleanup(session.Close)
	return session, timer, clock
}

func findByName(t *testing.T, s *Session, name string) model.Exercise {
	t.Helper()
	for _, e := range s.Exercises() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("Exercise %q not found", name)
	return model.Exercise{}
}

func TestNewSession(t *testing.T) {
	session, _, _ := newTestSession(t)

	expected := []string{"Squat: ", "Bench Press: ", "Overhead Press: ", "Barbell Row: ", "Deadlift: "}
	exercises := session.Exercises()
	if len(exercises) != len(expected) {
		t.Fatalf("Expected %d exercises, got %d", len(expected), len(exercises))
	}

	seen := make(map[string]bool)
	for i, e := range exercises {
		if e.Label() != expected[i] {
			t.Errorf("Exercise %d: expected %q, got %q", i, expected[i], e.Label())
		}
		if e.Weight != 20.0 {
			t.Errorf("Exercise %s: expected weight 20, got %v", e.Name, e.Weight)
		}
		if seen[e.ID] {
			t.Errorf("Duplicate exercise ID %s", e.ID)
		}
		seen[e.ID] = true
		if session.SelectedSet(e.ID) != model.NoSet {
			t.Errorf("Exercise %s: expected no selected set", e.Name)
		}
	}

	if state := session.Timer().State; state != model.TimerStateIdle {
		t.Errorf("Expected timer Idle, got %s", state)
	}
}

func TestSetWeight(t *testing.T) {
	session, _, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")

	for _, w := range []float64{0, 22.5, 100, 140.25, 20} {
		if err := session.SetWeight(squat.ID, w); err != nil {
			t.Fatalf("SetWeight(%v) returned error: %v", w, err)
		}
		got, _ := session.Exercise(squat.ID)
		if got.Weight != w {
			t.Errorf("Expected weight %v, got %v", w, got.Weight)
		}
	}

	// Other rows untouched
	bench := findByName(t, session, "Bench Press")
	if bench.Weight != model.DefaultWeight {
		t.Errorf("Expected bench press weight unchanged, got %v", bench.Weight)
	}
}

func TestSetWeight_Invalid(t *testing.T) {
	session, _, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")
	session.SetWeight(squat.ID, 60)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		err := session.SetWeight(squat.ID, w)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("SetWeight(%v) expected ErrInvalidWeight, got %v", w, err)
		}
	}

	got, _ := session.Exercise(squat.ID)
	if got.Weight != 60 {
		t.Errorf("Expected weight to stay 60, got %v", got.Weight)
	}

	if err := session.SetWeight("missing", 10); !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("Expected ErrExerciseNotFound, got %v", err)
	}
}

func TestSetWeightText(t *testing.T) {
	session, _, _ := newTestSession(t)
	row := findByName(t, session, "Deadlift")

	if err := session.SetWeightText(row.ID, "82.5"); err != nil {
		t.Fatalf("SetWeightText returned error: %v", err)
	}

	for _, text := range []string{"", "abc", "80kg", "-3"} {
		if err := session.SetWeightText(row.ID, text); err == nil {
			t.Errorf("SetWeightText(%q) expected error", text)
		}
	}

	got, _ := session.Exercise(row.ID)
	if got.Weight != 82.5 {
		t.Errorf("Expected weight 82.5 retained, got %v", got.Weight)
	}
}

func TestSelectSet_StartsTimer(t *testing.T) {
	session, timer, clock := newTestSession(t)
	squat := findByName(t, session, "Squat")
	deadlift := findByName(t, session, "Deadlift")

	if err := session.SelectSet(squat.ID, 3); err != nil {
		t.Fatalf("SelectSet returned error: %v", err)
	}

	status := session.Timer()
	if status.State != model.TimerStateRunning || status.Remaining != rest.DefaultDuration {
		t.Fatalf("Expected Running with %d seconds, got %+v", rest.DefaultDuration, status)
	}

	timer.Tick()

	// Second tap in another row while running keeps the same countdown
	if err := session.SelectSet(deadlift.ID, 1); err != nil {
		t.Fatalf("SelectSet returned error: %v", err)
	}
	status = session.Timer()
	if status.Remaining != rest.DefaultDuration-1 {
		t.Errorf("Expected countdown to continue at %d, got %d", rest.DefaultDuration-1, status.Remaining)
	}
	if clock.count != 1 {
		t.Errorf("Expected a single tick source, got %d", clock.count)
	}

	if got := session.SelectedSet(squat.ID); got != 3 {
		t.Errorf("Expected squat set 3, got %d", got)
	}
	if got := session.SelectedSet(deadlift.ID); got != 1 {
		t.Errorf("Expected deadlift set 1, got %d", got)
	}
	bench := findByName(t, session, "Bench Press")
	if got := session.SelectedSet(bench.ID); got != model.NoSet {
		t.Errorf("Expected bench press untouched, got %d", got)
	}
}

func TestSelectSet_Invalid(t *testing.T) {
	session, _, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")

	for _, set := range []int{0, 6, -1} {
		if err := session.SelectSet(squat.ID, set); !errors.Is(err, ErrInvalidSet) {
			t.Errorf("SelectSet(%d) expected ErrInvalidSet, got %v", set, err)
		}
	}
	if err := session.SelectSet("missing", 1); !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("Expected ErrExerciseNotFound, got %v", err)
	}

	if state := session.Timer().State; state != model.TimerStateIdle {
		t.Errorf("Rejected selections must not start the timer, got %s", state)
	}
}

func TestSelectSet_RestartsAfterFinish(t *testing.T) {
	session, timer, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")

	session.SelectSet(squat.ID, 1)
	for i := 0; i < rest.DefaultDuration; i++ {
		timer.Tick()
	}
	if status := session.Timer(); status.Display != rest.FinishedText {
		t.Fatalf("Expected %q, got %q", rest.FinishedText, status.Display)
	}

	session.SelectSet(squat.ID, 2)
	if status := session.Timer(); status.Display != "1:30" {
		t.Errorf("Expected new countdown at 1:30, got %s", status.Display)
	}
}

func TestSubscribe(t *testing.T) {
	session, timer, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")

	var snapshots []Snapshot
	unsubscribe := session.Subscribe(func(s Snapshot) {
		snapshots = append(snapshots, s)
	})

	session.SetWeight(squat.ID, 25)
	if len(snapshots) != 1 || snapshots[0].Exercises[0].Weight != 25 {
		t.Fatalf("Expected weight update notification, got %+v", snapshots)
	}

	session.SetWeight(squat.ID, 25) // unchanged, no notification
	if len(snapshots) != 1 {
		t.Errorf("Expected no notification for unchanged weight, got %d", len(snapshots))
	}

	session.SelectSet(squat.ID, 2)
	last := snapshots[len(snapshots)-1]
	if last.SelectedSets[squat.ID] != 2 || !last.Timer.IsRunning() {
		t.Errorf("Expected selection and running timer in snapshot, got %+v", last)
	}

	count := len(snapshots)
	timer.Tick()
	if len(snapshots) != count+1 {
		t.Fatalf("Expected timer tick notification")
	}
	if display := snapshots[len(snapshots)-1].Timer.Display; display != "1:29" {
		t.Errorf("Expected 1:29 in snapshot, got %s", display)
	}

	unsubscribe()
	timer.Tick()
	if len(snapshots) != count+1 {
		t.Errorf("Expected no notification after unsubscribe")
	}
}

func TestSelectSet_NotifiesOnce(t *testing.T) {
	session, _, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")
	bench := findByName(t, session, "Bench Press")

	calls := 0
	session.Subscribe(func(Snapshot) { calls++ })

	session.SelectSet(squat.ID, 1)
	if calls != 1 {
		t.Errorf("Expected one notification when the timer starts, got %d", calls)
	}

	calls = 0
	session.SelectSet(bench.ID, 4)
	if calls != 1 {
		t.Errorf("Expected one notification while the timer runs, got %d", calls)
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	session, _, _ := newTestSession(t)

	snapshot := session.Snapshot()
	snapshot.Exercises[0].Weight = 999
	for id := range snapshot.SelectedSets {
		snapshot.SelectedSets[id] = 4
	}

	exercises := session.Exercises()
	if exercises[0].Weight != model.DefaultWeight {
		t.Errorf("Mutating a snapshot changed session weight: %v", exercises[0].Weight)
	}
	if session.SelectedSet(exercises[0].ID) != model.NoSet {
		t.Error("Mutating a snapshot changed session selection")
	}
}

func TestClose(t *testing.T) {
	session, timer, _ := newTestSession(t)
	squat := findByName(t, session, "Squat")

	calls := 0
	session.Subscribe(func(Snapshot) { calls++ })

	session.SelectSet(squat.ID, 1)
	calls = 0
	session.Close()

	timer.Tick()
	if calls != 0 {
		t.Errorf("Expected no notifications after close, got %d", calls)
	}
	if remaining := session.Timer().Remaining; remaining != rest.DefaultDuration {
		t.Errorf("Expected countdown frozen at close, got %d", remaining)
	}
}
