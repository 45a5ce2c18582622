package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/workout/internal/config"
	"github.com/ytget/workout/internal/rest"
	"github.com/ytget/workout/internal/ui"
	"github.com/ytget/workout/internal/workout"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.workout")
	myApp.Settings().SetTheme(ui.NewWorkoutTheme(config.NewSettings(myApp).GetThemeVariant()))

	myWindow := myApp.NewWindow("WorkOut")
	myWindow.Resize(fyne.NewSize(420, 820))

	session := workout.NewSession(rest.NewTimer(rest.SystemClock, fyne.Do))

	// Create and setup UI
	ui.NewWorkoutScreen(myWindow, myApp, session)

	// Show and run
	myWindow.ShowAndRun()
}
