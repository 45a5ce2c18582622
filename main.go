package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/workout/internal/config"
	"github.com/ytget/workout/internal/rest"
	"github.com/ytget/workout/internal/ui"
	"github.com/ytget/workout/internal/workout"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.workout"
	AppName = "WorkOut"

	WindowWidth  = 420
	WindowHeight = 820
)

func main() {
	// Log version information
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewWorkoutTheme(settings.GetThemeVariant()))

	// The screen replaces the title with the localized app name
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Ticks are delivered on the UI thread
	timer := rest.NewTimer(rest.SystemClock, fyne.Do)
	session := workout.NewSession(timer)

	// Create and setup UI; closing the window releases the session
	ui.NewWorkoutScreen(myWindow, myApp, session)

	// Show and run
	myWindow.ShowAndRun()
}
