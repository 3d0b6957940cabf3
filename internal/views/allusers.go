package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AllUsersFrame offers the cross-user comparison charts.
type AllUsersFrame struct {
	container *fyne.Container

	bmiAllHandler  func()
	avgBMIHandler  func()
	ageDistHandler func()
	genderHandler  func()
	backHandler    func()
}

// NewAllUsersFrame creates the all-users analysis screen.
func NewAllUsersFrame() *AllUsersFrame {
	af := &AllUsersFrame{}

	title := widget.NewLabel("All Users Analysis")
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	bmiAllButton := widget.NewButton("BMI of All Users", func() {
		if af.bmiAllHandler != nil {
			af.bmiAllHandler()
		}
	})
	avgBMIButton := widget.NewButton("Average BMI by Diabetes Type", func() {
		if af.avgBMIHandler != nil {
			af.avgBMIHandler()
		}
	})
	ageDistButton := widget.NewButton("Age Distribution by Diabetes Type", func() {
		if af.ageDistHandler != nil {
			af.ageDistHandler()
		}
	})
	genderButton := widget.NewButton("Gender Distribution by Diabetes Type", func() {
		if af.genderHandler != nil {
			af.genderHandler()
		}
	})
	backButton := widget.NewButton("Go Back", func() {
		if af.backHandler != nil {
			af.backHandler()
		}
	})

	af.container = container.NewVBox(
		title,
		bmiAllButton,
		avgBMIButton,
		ageDistButton,
		genderButton,
		widget.NewSeparator(),
		backButton,
	)

	return af
}

func (af *AllUsersFrame) SetBMIAllHandler(handler func())  { af.bmiAllHandler = handler }
func (af *AllUsersFrame) SetAvgBMIHandler(handler func())  { af.avgBMIHandler = handler }
func (af *AllUsersFrame) SetAgeDistHandler(handler func()) { af.ageDistHandler = handler }
func (af *AllUsersFrame) SetGenderHandler(handler func())  { af.genderHandler = handler }
func (af *AllUsersFrame) SetBackHandler(handler func())    { af.backHandler = handler }

// GetContainer returns the frame container.
func (af *AllUsersFrame) GetContainer() *fyne.Container {
	return af.container
}
