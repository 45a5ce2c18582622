package workout

import (
	"github.com/ytget/workout/internal/model"
	"github.com/ytget/workout/internal/rest"
)

// Tracker defines the interface the UI uses to drive a workout session.
type Tracker interface {
	Subscribe(func(Snapshot)) (unsubscribe func())
	Exercises() []model.Exercise
	Exercise(id string) (model.Exercise, bool)
	SetWeight(id string, weight float64) error
	SetWeightText(id string, text string) error
	SelectSet(id string, set int) error
	SelectedSet(id string) int
	Timer() rest.Status
	Snapshot() Snapshot
	Close()
}
