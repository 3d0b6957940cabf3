package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainMenuFrame is the per-user analysis menu: dataset selection, profile
// editing, glucose charts and insights.
type MainMenuFrame struct {
	container    *fyne.Container
	welcomeLabel *widget.Label

	chooseDatasetHandler func()
	editProfileHandler   func()
	backHandler          func()
	levelsChartHandler   func()
	mealChartHandler     func()
	insightsHandler      func()
}

// NewMainMenuFrame creates the single-user menu screen.
func NewMainMenuFrame() *MainMenuFrame {
	mf := &MainMenuFrame{}

	mf.welcomeLabel = widget.NewLabel("")
	mf.welcomeLabel.TextStyle.Bold = true
	mf.welcomeLabel.Alignment = fyne.TextAlignCenter

	chooseButton := widget.NewButton("Choose Dataset / File", func() {
		if mf.chooseDatasetHandler != nil {
			mf.chooseDatasetHandler()
		}
	})
	editButton := widget.NewButton("Change My Data", func() {
		if mf.editProfileHandler != nil {
			mf.editProfileHandler()
		}
	})
	levelsButton := widget.NewButton("Glucose Levels Over Time", func() {
		if mf.levelsChartHandler != nil {
			mf.levelsChartHandler()
		}
	})
	mealButton := widget.NewButton("Glucose Levels by Meal", func() {
		if mf.mealChartHandler != nil {
			mf.mealChartHandler()
		}
	})
	insightsButton := widget.NewButton("Generate Insights", func() {
		if mf.insightsHandler != nil {
			mf.insightsHandler()
		}
	})
	backButton := widget.NewButton("Go Back", func() {
		if mf.backHandler != nil {
			mf.backHandler()
		}
	})

	mf.container = container.NewVBox(
		mf.welcomeLabel,
		chooseButton,
		editButton,
		widget.NewSeparator(),
		levelsButton,
		mealButton,
		insightsButton,
		widget.NewSeparator(),
		backButton,
	)

	return mf
}

// SetUser updates the greeting for the active user.
func (mf *MainMenuFrame) SetUser(name string) {
	fyne.Do(func() {
		mf.welcomeLabel.SetText("Hello, " + name)
	})
}

func (mf *MainMenuFrame) SetChooseDatasetHandler(handler func()) { mf.chooseDatasetHandler = handler }
func (mf *MainMenuFrame) SetEditProfileHandler(handler func())   { mf.editProfileHandler = handler }
func (mf *MainMenuFrame) SetBackHandler(handler func())          { mf.backHandler = handler }
func (mf *MainMenuFrame) SetLevelsChartHandler(handler func())   { mf.levelsChartHandler = handler }
func (mf *MainMenuFrame) SetMealChartHandler(handler func())     { mf.mealChartHandler = handler }
func (mf *MainMenuFrame) SetInsightsHandler(handler func())      { mf.insightsHandler = handler }

// GetContainer returns the frame container.
func (mf *MainMenuFrame) GetContainer() *fyne.Container {
	return mf.container
}
