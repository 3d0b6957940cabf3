package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"glucose-monitor/internal/models"
	"glucose-monitor/internal/views/components"
)

// ProfileFrame collects or edits a user's personal data. The BMI label
// updates live as weight and height change.
type ProfileFrame struct {
	window    fyne.Window
	container *fyne.Container

	nameEntry      *widget.Entry
	genderRadio    *widget.RadioGroup
	dobEntry       *widget.Entry
	weightEntry    *widget.Entry
	heightEntry    *widget.Entry
	bmiLabel       *widget.Label
	diabetesSelect *widget.Select

	saveHandler func(name, gender, dob string, weightKg, heightCm float64, diabetesType string)
	backHandler func()
}

// NewProfileFrame creates the profile data entry screen.
func NewProfileFrame(window fyne.Window) *ProfileFrame {
	pf := &ProfileFrame{window: window}

	pf.nameEntry = widget.NewEntry()
	pf.nameEntry.SetPlaceHolder("Your name")

	pf.genderRadio = widget.NewRadioGroup(models.GenderOptions, nil)
	pf.genderRadio.Horizontal = true

	pf.dobEntry = widget.NewEntry()
	pf.dobEntry.SetPlaceHolder(models.DateLayout)
	calendarButton := widget.NewButton("Pick date", func() {
		components.ShowDatePicker(pf.window, func(date time.Time) {
			pf.dobEntry.SetText(date.Format(models.DateLayout))
		})
	})

	pf.bmiLabel = widget.NewLabel("BMI: -")

	pf.weightEntry = widget.NewEntry()
	pf.weightEntry.SetPlaceHolder("e.g. 72.5")
	pf.weightEntry.OnChanged = func(string) { pf.refreshBMI() }

	pf.heightEntry = widget.NewEntry()
	pf.heightEntry.SetPlaceHolder("e.g. 178")
	pf.heightEntry.OnChanged = func(string) { pf.refreshBMI() }

	pf.diabetesSelect = widget.NewSelect(models.DiabetesTypeOptions, nil)

	saveButton := widget.NewButton("Save", func() {
		if pf.saveHandler == nil {
			return
		}
		weight, _ := strconv.ParseFloat(strings.TrimSpace(pf.weightEntry.Text), 64)
		height, _ := strconv.ParseFloat(strings.TrimSpace(pf.heightEntry.Text), 64)
		pf.saveHandler(
			strings.TrimSpace(pf.nameEntry.Text),
			pf.genderRadio.Selected,
			strings.TrimSpace(pf.dobEntry.Text),
			weight,
			height,
			pf.diabetesSelect.Selected,
		)
	})
	backButton := widget.NewButton("Go Back", func() {
		if pf.backHandler != nil {
			pf.backHandler()
		}
	})

	form := container.NewVBox(
		widget.NewLabel("Name:"),
		pf.nameEntry,
		widget.NewLabel("Gender:"),
		pf.genderRadio,
		widget.NewLabel("Date of Birth:"),
		container.NewBorder(nil, nil, nil, calendarButton, pf.dobEntry),
		widget.NewLabel("Weight (kg):"),
		pf.weightEntry,
		widget.NewLabel("Height (cm):"),
		pf.heightEntry,
		pf.bmiLabel,
		widget.NewLabel("Diabetes Type:"),
		pf.diabetesSelect,
		container.NewHBox(saveButton, backButton),
	)

	pf.container = container.NewVBox(form)

	return pf
}

// refreshBMI recomputes the live BMI readout from the current entries.
func (pf *ProfileFrame) refreshBMI() {
	weight, errW := strconv.ParseFloat(strings.TrimSpace(pf.weightEntry.Text), 64)
	height, errH := strconv.ParseFloat(strings.TrimSpace(pf.heightEntry.Text), 64)
	if errW != nil || errH != nil {
		pf.bmiLabel.SetText("BMI: -")
		return
	}
	bmi, err := models.ComputeBMI(weight, height)
	if err != nil {
		pf.bmiLabel.SetText("BMI: -")
		return
	}
	pf.bmiLabel.SetText(fmt.Sprintf("BMI: %.2f", bmi))
}

// Populate fills the form with an existing profile for editing.
func (pf *ProfileFrame) Populate(name string, profile models.UserProfile) {
	fyne.Do(func() {
		pf.nameEntry.SetText(name)
		pf.genderRadio.SetSelected(profile.Gender)
		pf.dobEntry.SetText(profile.DOB)
		pf.weightEntry.SetText(strconv.FormatFloat(profile.Weight, 'f', -1, 64))
		pf.heightEntry.SetText(strconv.FormatFloat(profile.Height, 'f', -1, 64))
		pf.diabetesSelect.SetSelected(profile.DiabetesType)
		pf.refreshBMI()
	})
}

// Clear resets the form for a fresh profile.
func (pf *ProfileFrame) Clear() {
	fyne.Do(func() {
		pf.nameEntry.SetText("")
		pf.genderRadio.SetSelected("")
		pf.dobEntry.SetText("")
		pf.weightEntry.SetText("")
		pf.heightEntry.SetText("")
		pf.diabetesSelect.ClearSelected()
		pf.bmiLabel.SetText("BMI: -")
	})
}

func (pf *ProfileFrame) SetSaveHandler(handler func(name, gender, dob string, weightKg, heightCm float64, diabetesType string)) {
	pf.saveHandler = handler
}
func (pf *ProfileFrame) SetBackHandler(handler func()) { pf.backHandler = handler }

// GetContainer returns the frame container.
func (pf *ProfileFrame) GetContainer() *fyne.Container {
	return pf.container
}
