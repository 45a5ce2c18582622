package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout/internal/config"
	"github.com/ytget/workout/internal/workout"
)

// WorkoutScreen is the single screen of the app: exercise rows over a
// gradient and the rest timer pinned to the bottom
type WorkoutScreen struct {
	window       fyne.Window
	app          fyne.App
	session      workout.Tracker
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI

	titleLabel  *widget.Label
	settingsBtn *widget.Button
	rows        []*ExerciseRow
	timerBar    *TimerBar

	unsubscribe func()
	closeOnce   sync.Once
}

// NewWorkoutScreen creates the screen, binds it to the session and sets it as
// the window content. Closing the window tears the session down.
func NewWorkoutScreen(window fyne.Window, app fyne.App, session workout.Tracker) *WorkoutScreen {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &WorkoutScreen{
		window:       window,
		app:          app,
		session:      session,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.render(session.Snapshot())
	ui.unsubscribe = session.Subscribe(ui.render)

	window.SetOnClosed(ui.Close)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *WorkoutScreen) setupUI() {
	ui.createMenu()

	// Inline navigation title
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topBar := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.titleLabel)

	rowObjects := make([]fyne.CanvasObject, 0, len(ui.session.Exercises()))
	for _, exercise := range ui.session.Exercises() {
		row := NewExerciseRow(exercise, ui.localization, ui.mobileUI)
		row.SetCallbacks(ui.session.SetWeightText, ui.session.SelectSet)
		ui.rows = append(ui.rows, row)
		rowObjects = append(rowObjects, row)
	}

	gradient := canvas.NewLinearGradient(GradientTopColor, GradientBottomColor, 0)
	padding := ui.mobileUI.GetMobilePadding()
	rowsBox := container.New(layout.NewCustomPaddedLayout(padding, padding, padding, padding),
		container.NewVBox(rowObjects...))
	scroll := container.NewVScroll(container.NewStack(gradient, rowsBox))

	ui.timerBar = NewTimerBar(ui.localization)

	content := container.NewBorder(
		topBar,                  // top
		ui.timerBar.Container(), // bottom
		nil,                     // left
		nil,                     // right
		container.NewStack(canvas.NewRectangle(ScreenColor), scroll), // center
	)

	ui.window.SetContent(content)
	log.Printf("Workout screen set up with %d exercises", len(ui.rows))
}

// createMenu creates the application menu
func (ui *WorkoutScreen) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	settingsItem.Icon = theme.SettingsIcon()

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// render pushes a session snapshot into the widgets
func (ui *WorkoutScreen) render(snapshot workout.Snapshot) {
	for _, row := range ui.rows {
		for _, exercise := range snapshot.Exercises {
			if exercise.ID == row.ExerciseID() {
				row.Update(exercise, snapshot.SelectedSets[exercise.ID])
				break
			}
		}
	}
	ui.timerBar.SetStatus(snapshot.Timer)
}

// onShowSettings shows the settings dialog
func (ui *WorkoutScreen) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings re-themes and re-labels the screen after settings were saved
func (ui *WorkoutScreen) applySettings() {
	ui.app.Settings().SetTheme(NewWorkoutTheme(ui.settings.GetThemeVariant()))
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *WorkoutScreen) refreshUITexts() {
	title := ui.localization.GetText(KeyAppTitle)
	ui.window.SetTitle(title)
	ui.titleLabel.SetText(title)
	ui.createMenu()

	for _, row := range ui.rows {
		row.refreshTexts()
	}
	ui.timerBar.Refresh()
}

// Close releases the session and its timer; safe to call more than once
func (ui *WorkoutScreen) Close() {
	ui.closeOnce.Do(func() {
		if ui.unsubscribe != nil {
			ui.unsubscribe()
		}
		ui.session.Close()
		log.Printf("Workout screen closed")
	})
}
