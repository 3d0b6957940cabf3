package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"glucose-monitor/internal/views/components"
)

// Frame identifies one of the stacked screens.
type Frame int

const (
	FrameWelcome Frame = iota
	FrameProfile
	FrameMainMenu
	FrameAllUsers
)

// MainView owns the window and the stack of frames. Only one frame is
// visible at a time; the controller switches between them.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	welcome   *WelcomeFrame
	profile   *ProfileFrame
	mainMenu  *MainMenuFrame
	allUsers  *AllUsersFrame
	statusBar *components.StatusBar

	frames map[Frame]*fyne.Container
}

// NewMainView creates the main view with all frames built and the welcome
// frame showing.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.welcome = NewWelcomeFrame()
	mv.profile = NewProfileFrame(mv.window)
	mv.mainMenu = NewMainMenuFrame()
	mv.allUsers = NewAllUsersFrame()
	mv.statusBar = components.NewStatusBar()

	mv.frames = map[Frame]*fyne.Container{
		FrameWelcome:  mv.welcome.GetContainer(),
		FrameProfile:  mv.profile.GetContainer(),
		FrameMainMenu: mv.mainMenu.GetContainer(),
		FrameAllUsers: mv.allUsers.GetContainer(),
	}
}

func (mv *MainView) buildLayout() {
	stack := container.NewStack(
		mv.frames[FrameWelcome],
		mv.frames[FrameProfile],
		mv.frames[FrameMainMenu],
		mv.frames[FrameAllUsers],
	)

	for frame, c := range mv.frames {
		if frame != FrameWelcome {
			c.Hide()
		}
	}

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		stack,
	)

	mv.window.SetContent(mv.mainContainer)
}

// ShowFrame raises the requested frame and hides the rest.
func (mv *MainView) ShowFrame(frame Frame) {
	fyne.Do(func() {
		for id, c := range mv.frames {
			if id == frame {
				c.Show()
			} else {
				c.Hide()
			}
		}
		mv.mainContainer.Refresh()
	})
}

// Frame accessors - used by controller to wire handlers

func (mv *MainView) Welcome() *WelcomeFrame   { return mv.welcome }
func (mv *MainView) Profile() *ProfileFrame   { return mv.profile }
func (mv *MainView) MainMenu() *MainMenuFrame { return mv.mainMenu }
func (mv *MainView) AllUsers() *AllUsersFrame { return mv.allUsers }

// UI update methods - called by controller

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateDatasetInfo updates the dataset portion of the status bar.
func (mv *MainView) UpdateDatasetInfo(path string) {
	mv.statusBar.SetDataset(path)
}

// UpdateUserInfo updates the active user portion of the status bar.
func (mv *MainView) UpdateUserInfo(name string) {
	mv.statusBar.SetUser(name)
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog.
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowOpenCSVDialog displays a file open dialog filtered to CSV files.
func (mv *MainView) ShowOpenCSVDialog(callback func(fyne.URIReadCloser, error)) {
	fyne.Do(func() {
		fd := dialog.NewFileOpen(callback, mv.window)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
		fd.Show()
	})
}

// ShowSaveDialog displays a file save dialog with a suggested file name.
func (mv *MainView) ShowSaveDialog(suggestedName string, callback func(fyne.URIWriteCloser, error)) {
	fyne.Do(func() {
		fd := dialog.NewFileSave(callback, mv.window)
		fd.SetFileName(suggestedName)
		fd.Show()
	})
}

// ShowThresholdDialog asks for the low/high glucose thresholds.
func (mv *MainView) ShowThresholdDialog(lowInitial, highInitial int, callback func(low, high int)) {
	fyne.Do(func() {
		components.ShowThresholdDialog(mv.window, lowInitial, highInitial, callback)
	})
}

// GetWindow returns the main window.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view.
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// Close closes the view.
func (mv *MainView) Close() {
	fyne.Do(func() {
		mv.window.Close()
	})
}
