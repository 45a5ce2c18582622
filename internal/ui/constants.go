package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing (ExerciseRow / timer bar)
const (
	WeightEntryWidth float32 = 72
	SetButtonSize    float32 = 52
	SetButtonSpacing float32 = 6

	TimerBarBottomPadding float32 = 16

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize  float32 = 44
	MobileSetButtonSize float32 = 60
)

// Text sizes
const (
	ExerciseNameTextSize float32 = 22
	TimerTextSize        float32 = 34
)

// Background colors
var (
	GradientTopColor    = color.RGBA{R: 0, G: 122, B: 255, A: 255}   // blue
	GradientBottomColor = color.RGBA{R: 255, G: 59, B: 48, A: 255}   // red
	ScreenColor         = color.RGBA{R: 250, G: 200, B: 152, A: 255} // peach
	TimerBarColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	TimerTextColor      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)
