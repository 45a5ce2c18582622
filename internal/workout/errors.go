package workout

import "errors"

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrInvalidSet       = errors.New("invalid set number")
)
