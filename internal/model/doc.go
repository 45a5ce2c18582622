package model

// Package model defines the domain data shared across the app: exercises, the
// fixed workout template, the set range, and rest timer states. Structures are
// plain values so the UI can render copies without touching session state.
