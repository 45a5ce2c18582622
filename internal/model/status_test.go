package model

import "testing"

func TestTimerState_IsActive(t *testing.T) {
	tests := []struct {
		state    TimerState
		expected bool
	}{
		{TimerStateIdle, false},
		{TimerStateRunning, true},
		{TimerStateFinished, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("TimerState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestTimerState_CanStart(t *testing.T) {
	tests := []struct {
		state    TimerState
		expected bool
	}{
		{TimerStateIdle, true},
		{TimerStateRunning, false},
		{TimerStateFinished, true},
	}

	for _, test := range tests {
		result := test.state.CanStart()
		if result != test.expected {
			t.Errorf("TimerState(%s).CanStart() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestTimerState_String(t *testing.T) {
	state := TimerStateFinished
	expected := "Finished"
	result := state.String()

	if result != expected {
		t.Errorf("TimerState.String() = %s, expected %s", result, expected)
	}
}
