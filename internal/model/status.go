package model

// TimerState represents the state of the rest countdown
type TimerState string

const (
	// TimerStateIdle means no countdown has been started yet
	TimerStateIdle TimerState = "Idle"

	// TimerStateRunning means the countdown is ticking
	TimerStateRunning TimerState = "Running"

	// TimerStateFinished means the countdown reached zero
	TimerStateFinished TimerState = "Finished"
)

// String returns the string representation of TimerState
func (ts TimerState) String() string {
	return string(ts)
}

// IsActive returns true while the countdown is ticking
func (ts TimerState) IsActive() bool {
	return ts == TimerStateRunning
}

// CanStart returns true if a new countdown may begin from this state
func (ts TimerState) CanStart() bool {
	return ts == TimerStateIdle || ts == TimerStateFinished
}
