package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// allUsersEntry is the picker entry that opens the all-users analysis
// instead of a single profile.
const allUsersEntry = "All Users"

// WelcomeFrame is the application entry screen: create a new user or load
// an existing one.
type WelcomeFrame struct {
	container  *fyne.Container
	userPicker *fyne.Container
	userSelect *widget.Select

	createUserHandler func()
	loadUsersHandler  func()
	selectUserHandler func(name string)
	allUsersHandler   func()
}

// NewWelcomeFrame creates the welcome screen.
func NewWelcomeFrame() *WelcomeFrame {
	wf := &WelcomeFrame{}

	title := widget.NewLabel("Welcome to Blood Glucose Monitor")
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	createButton := widget.NewButton("Create a new user", func() {
		if wf.createUserHandler != nil {
			wf.createUserHandler()
		}
	})
	loadButton := widget.NewButton("Load existing user / all users", func() {
		if wf.loadUsersHandler != nil {
			wf.loadUsersHandler()
		}
	})

	wf.userSelect = widget.NewSelect(nil, nil)
	selectButton := widget.NewButton("Select", func() {
		selected := wf.userSelect.Selected
		if selected == "" {
			return
		}
		if selected == allUsersEntry {
			if wf.allUsersHandler != nil {
				wf.allUsersHandler()
			}
			return
		}
		if wf.selectUserHandler != nil {
			wf.selectUserHandler(selected)
		}
	})

	wf.userPicker = container.NewHBox(
		widget.NewLabel("Select User:"),
		wf.userSelect,
		selectButton,
	)
	wf.userPicker.Hide()

	wf.container = container.NewVBox(
		title,
		createButton,
		loadButton,
		container.NewCenter(wf.userPicker),
	)

	return wf
}

// ShowUserPicker populates and reveals the user selection row. The list
// always ends with the all-users entry.
func (wf *WelcomeFrame) ShowUserPicker(names []string) {
	fyne.Do(func() {
		options := append(append([]string{}, names...), allUsersEntry)
		wf.userSelect.Options = options
		wf.userSelect.SetSelected(options[0])
		wf.userPicker.Show()
		wf.container.Refresh()
	})
}

// Reset hides the user picker again.
func (wf *WelcomeFrame) Reset() {
	fyne.Do(func() {
		wf.userPicker.Hide()
	})
}

func (wf *WelcomeFrame) SetCreateUserHandler(handler func()) { wf.createUserHandler = handler }
func (wf *WelcomeFrame) SetLoadUsersHandler(handler func())  { wf.loadUsersHandler = handler }
func (wf *WelcomeFrame) SetSelectUserHandler(handler func(string)) {
	wf.selectUserHandler = handler
}
func (wf *WelcomeFrame) SetAllUsersHandler(handler func()) { wf.allUsersHandler = handler }

// GetContainer returns the frame container.
func (wf *WelcomeFrame) GetContainer() *fyne.Container {
	return wf.container
}
