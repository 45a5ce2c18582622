package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout/internal/model"
	"github.com/ytget/workout/internal/workout"
)

// ExerciseRow renders one exercise: its name, weight entry with unit, and
// the five set selector buttons
type ExerciseRow struct {
	widget.BaseWidget

	exercise     model.Exercise
	selectedSet  int
	localization *Localization

	// UI components
	nameLabel   *TappableLabel
	weightEntry *WeightEntry
	unitLabel   *widget.Label
	setButtons  []*SetButton
	content     *fyne.Container

	// Callbacks
	onWeightText func(exerciseID, text string) error
	onSelectSet  func(exerciseID string, set int) error
}

// NewExerciseRow creates a new exercise row widget
func NewExerciseRow(exercise model.Exercise, localization *Localization, mobileUI *MobileUI) *ExerciseRow {
	r := &ExerciseRow{
		exercise:     exercise,
		selectedSet:  model.NoSet,
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI(mobileUI)
	r.updateFromExercise()
	return r
}

// SetCallbacks sets the action callbacks
func (r *ExerciseRow) SetCallbacks(
	onWeightText func(exerciseID, text string) error,
	onSelectSet func(exerciseID string, set int) error,
) {
	r.onWeightText = onWeightText
	r.onSelectSet = onSelectSet
}

// ExerciseID returns the ID of the rendered exercise
func (r *ExerciseRow) ExerciseID() string {
	return r.exercise.ID
}

// Update re-renders the row from session state
func (r *ExerciseRow) Update(exercise model.Exercise, selectedSet int) {
	r.exercise = exercise
	r.selectedSet = selectedSet
	r.updateFromExercise()
}

// createUI creates the UI components
func (r *ExerciseRow) createUI(mobileUI *MobileUI) {
	r.nameLabel = NewTappableLabel("", r.focusWeight)
	r.nameLabel.SizeName = theme.SizeNameSubHeadingText
	r.nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	r.weightEntry = NewWeightEntry(r.localization.GetText(KeyWeight))
	r.weightEntry.SetMinSize(mobileUI.WeightEntrySize())
	r.weightEntry.OnChanged = r.onWeightChanged
	r.weightEntry.OnSubmitted = func(string) { r.commitWeight() }
	r.weightEntry.onFocusLost = r.commitWeight

	r.unitLabel = widget.NewLabel(r.localization.GetText(KeyUnitKg))

	header := container.NewHBox(r.nameLabel, r.weightEntry, r.unitLabel, layout.NewSpacer())

	buttons := make([]fyne.CanvasObject, 0, model.MaxSet)
	for n := model.MinSet; n <= model.MaxSet; n++ {
		btn := NewSetButton(n, r.onSetTapped)
		btn.SetMinSize(mobileUI.SetButtonSize())
		r.setButtons = append(r.setButtons, btn)
		buttons = append(buttons, btn)
	}
	setRow := container.New(layout.NewCustomPaddedHBoxLayout(SetButtonSpacing), buttons...)

	r.content = container.NewPadded(container.NewVBox(header, setRow))
}

// updateFromExercise updates UI components based on exercise state
func (r *ExerciseRow) updateFromExercise() {
	r.nameLabel.SetText(model.Caption(r.localization.GetText(r.exercise.Name)))

	// Leave the entry alone while its text already means the stored weight,
	// so partial input like "22." is not rewritten under the user's cursor
	if current, err := workout.ParseWeight(r.weightEntry.Text); err != nil || current != r.exercise.Weight {
		if err == nil || !r.isEditing() {
			r.weightEntry.SetText(workout.FormatWeight(r.exercise.Weight))
		}
	}

	for _, btn := range r.setButtons {
		btn.SetSelected(btn.Number() == r.selectedSet)
	}
}

// refreshTexts re-reads localized captions
func (r *ExerciseRow) refreshTexts() {
	r.unitLabel.SetText(r.localization.GetText(KeyUnitKg))
	r.weightEntry.SetPlaceHolder(r.localization.GetText(KeyWeight))
	r.updateFromExercise()
}

// onWeightChanged forwards every edit; text that does not parse is ignored
func (r *ExerciseRow) onWeightChanged(text string) {
	if r.onWeightText == nil {
		log.Printf("onWeightText callback is nil for exercise %s", r.exercise.ID)
		return
	}
	if err := r.onWeightText(r.exercise.ID, text); err != nil {
		log.Printf("Weight edit ignored for %s: %v", r.exercise.Name, err)
	}
}

// commitWeight discards invalid text by restoring the stored weight
func (r *ExerciseRow) commitWeight() {
	if _, err := workout.ParseWeight(r.weightEntry.Text); err != nil {
		r.weightEntry.SetText(workout.FormatWeight(r.exercise.Weight))
	}
}

// onSetTapped highlights the set and starts the rest timer
func (r *ExerciseRow) onSetTapped(set int) {
	if r.onSelectSet == nil {
		log.Printf("onSelectSet callback is nil for exercise %s", r.exercise.ID)
		return
	}
	if err := r.onSelectSet(r.exercise.ID, set); err != nil {
		log.Printf("Set selection failed for %s: %v", r.exercise.Name, err)
	}
}

// focusWeight moves keyboard focus to the weight entry
func (r *ExerciseRow) focusWeight() {
	if c := r.canvas(); c != nil {
		c.Focus(r.weightEntry)
	}
}

// isEditing reports whether the weight entry holds keyboard focus
func (r *ExerciseRow) isEditing() bool {
	c := r.canvas()
	return c != nil && c.Focused() == r.weightEntry
}

func (r *ExerciseRow) canvas() fyne.Canvas {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Driver().CanvasForObject(r.weightEntry)
}

// CreateRenderer creates the widget renderer
func (r *ExerciseRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}
