package ui

// Package ui contains the Fyne-based workout screen. It renders the exercise
// rows and the shared rest timer, forwards taps and weight edits to the
// workout session, and re-renders from session snapshots. All UI strings are
// localized via Localization.
