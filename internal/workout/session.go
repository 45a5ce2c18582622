package workout

import (
	"fmt"
	"log"
	"sync"

	"github.com/ytget/workout/internal/model"
	"github.com/ytget/workout/internal/rest"
)

// Snapshot is a copy of session state handed to subscribers
type Snapshot struct {
	Exercises    []model.Exercise
	SelectedSets map[string]int // exercise ID -> highlighted set, model.NoSet if none
	Timer        rest.Status
}

var _ Tracker = (*Session)(nil)

// Session is one workout: five exercises in fixed order and a shared rest timer
type Session struct {
	mu        sync.RWMutex
	exercises []*model.Exercise
	selected  map[string]int
	timer     *rest.Timer

	subsMutex   sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewSession creates a session from the default exercise template.
// The session takes ownership of timer and closes it in Close.
func NewSession(timer *rest.Timer) *Session {
	s := &Session{
		exercises:   make([]*model.Exercise, 0, len(model.DefaultExerciseNames)),
		selected:    make(map[string]int, len(model.DefaultExerciseNames)),
		timer:       timer,
		subscribers: make(map[int]func(Snapshot)),
	}

	for _, name := range model.DefaultExerciseNames {
		exercise := model.NewExercise(name)
		s.exercises = append(s.exercises, exercise)
		s.selected[exercise.ID] = model.NoSet
	}

	timer.SetUpdateCallback(func(rest.Status) {
		s.notifyUpdate()
	})
	return s
}

// Subscribe registers a callback fired after every state change.
// The returned function removes the subscription.
func (s *Session) Subscribe(callback func(Snapshot)) func() {
	s.subsMutex.Lock()
	defer s.subsMutex.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = callback

	return func() {
		s.subsMutex.Lock()
		defer s.subsMutex.Unlock()
		delete(s.subscribers, id)
	}
}

// Exercises returns copies of all exercises in display order
func (s *Session) Exercises() []model.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exercisesLocked()
}

// Exercise returns an exercise by ID
func (s *Session) Exercise(id string) (model.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercise := s.findLocked(id)
	if exercise == nil {
		return model.Exercise{}, false
	}
	return *exercise, true
}

// SetWeight updates the weight of an exercise.
// Invalid weights are rejected and the previous value is kept.
func (s *Session) SetWeight(id string, weight float64) error {
	if !model.IsValidWeight(weight) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	s.mu.Lock()
	exercise := s.findLocked(id)
	if exercise == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	if exercise.Weight == weight {
		s.mu.Unlock()
		return nil
	}
	exercise.Weight = weight
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// SetWeightText parses text from a weight entry and stores it.
// Text that does not parse leaves the weight unchanged.
func (s *Session) SetWeightText(id string, text string) error {
	weight, err := ParseWeight(text)
	if err != nil {
		return err
	}
	return s.SetWeight(id, weight)
}

// SelectSet highlights a set button in one row and starts the rest timer.
// Other rows keep their selection.
func (s *Session) SelectSet(id string, set int) error {
	if !model.IsValidSet(set) {
		return fmt.Errorf("%w: %d", ErrInvalidSet, set)
	}

	s.mu.Lock()
	if s.findLocked(id) == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	s.selected[id] = set
	s.mu.Unlock()

	// A started timer notifies through its update callback
	if !s.timer.Start() {
		log.Printf("Rest timer already running, set %d selected without restart", set)
		s.notifyUpdate()
	}
	return nil
}

// SelectedSet returns the highlighted set of an exercise, model.NoSet if none
func (s *Session) SelectedSet(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[id]
}

// Timer returns the rest timer status
func (s *Session) Timer() rest.Status {
	return s.timer.Snapshot()
}

// Snapshot returns a copy of the whole session state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	selected := make(map[string]int, len(s.selected))
	for id, set := range s.selected {
		selected[id] = set
	}
	snapshot := Snapshot{
		Exercises:    s.exercisesLocked(),
		SelectedSets: selected,
	}
	s.mu.RUnlock()

	snapshot.Timer = s.timer.Snapshot()
	return snapshot
}

// Close releases the rest timer and drops all subscribers
func (s *Session) Close() {
	s.timer.Close()

	s.subsMutex.Lock()
	s.subscribers = make(map[int]func(Snapshot))
	s.subsMutex.Unlock()
}

func (s *Session) exercisesLocked() []model.Exercise {
	exercises := make([]model.Exercise, len(s.exercises))
	for i, exercise := range s.exercises {
		exercises[i] = *exercise
	}
	return exercises
}

func (s *Session) findLocked(id string) *model.Exercise {
	for _, exercise := range s.exercises {
		if exercise.ID == id {
			return exercise
		}
	}
	return nil
}

// notifyUpdate calls every subscriber with a fresh snapshot
func (s *Session) notifyUpdate() {
	s.subsMutex.Lock()
	callbacks := make([]func(Snapshot), 0, len(s.subscribers))
	for _, callback := range s.subscribers {
		callbacks = append(callbacks, callback)
	}
	s.subsMutex.Unlock()

	if len(callbacks) == 0 {
		return
	}

	snapshot := s.Snapshot()
	for _, callback := range callbacks {
		callback(snapshot)
	}
}
