package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/workout/internal/config"
)

// WorkoutTheme defines the app theme: red accents for selected sets and
// larger text for exercise names and the timer
type WorkoutTheme struct {
	variant config.ThemeVariant
}

// NewWorkoutTheme creates a new theme, forcing light or dark colors unless
// variant is config.ThemeSystem
func NewWorkoutTheme(variant config.ThemeVariant) fyne.Theme {
	return &WorkoutTheme{variant: variant}
}

// Color returns theme colors
func (t *WorkoutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.resolveVariant(variant)

	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255} // Red for the selected set
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 122, B: 255, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *WorkoutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *WorkoutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *WorkoutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSubHeadingText:
		return ExerciseNameTextSize
	case theme.SizeNameInputRadius:
		return 6 // Rounded weight entry
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// resolveVariant applies the user's forced light/dark choice
func (t *WorkoutTheme) resolveVariant(variant fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	}
	return variant
}
