package rest

// Package rest implements the shared rest countdown between sets. The timer
// owns a single ticker at a time, acquired on Start and released when the
// countdown reaches zero or the timer is closed. Ticks are handed to a
// Dispatcher so the state machine always advances on the UI thread.
