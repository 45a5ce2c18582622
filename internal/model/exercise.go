package model

import (
	"math"

	"github.com/google/uuid"
)

// Set selector range
const (
	NoSet  = 0 // no set button highlighted yet
	MinSet = 1
	MaxSet = 5
)

// DefaultWeight is the starting weight in kg for every exercise
const DefaultWeight = 20.0

// DefaultExerciseNames is the fixed workout template in display order
var DefaultExerciseNames = []string{
	"Squat",
	"Bench Press",
	"Overhead Press",
	"Barbell Row",
	"Deadlift",
}

// Exercise represents a single exercise row of the workout
type Exercise struct {
	ID     string
	Name   string
	Weight float64 // kg, finite and non-negative
}

// NewExercise creates an exercise with a fresh unique ID and the default weight
func NewExercise(name string) *Exercise {
	return &Exercise{
		ID:     uuid.NewString(),
		Name:   name,
		Weight: DefaultWeight,
	}
}

// Label returns the caption shown in front of the weight entry, e.g. "Squat: "
func (e *Exercise) Label() string {
	return Caption(e.Name)
}

// Caption formats an exercise name, possibly translated, as a row caption
func Caption(name string) string {
	return name + ": "
}

// IsValidWeight reports whether w can be stored as an exercise weight
func IsValidWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// IsValidSet reports whether n addresses one of the set buttons
func IsValidSet(n int) bool {
	return n >= MinSet && n <= MaxSet
}
