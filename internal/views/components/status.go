package components

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the current status, loaded dataset and selected user.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	datasetInfo *widget.Label
	userInfo    *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		datasetInfo: widget.NewLabel("No dataset loaded"),
		userInfo:    widget.NewLabel("No user selected"),
	}
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.datasetInfo,
		widget.NewSeparator(),
		sb.userInfo,
	)
	return sb
}

// SetStatus updates the main status message.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// SetDataset updates the loaded dataset display.
func (sb *StatusBar) SetDataset(path string) {
	fyne.Do(func() {
		if path == "" {
			sb.datasetInfo.SetText("No dataset loaded")
			return
		}
		sb.datasetInfo.SetText("Dataset: " + filepath.Base(path))
	})
}

// SetUser updates the selected user display.
func (sb *StatusBar) SetUser(name string) {
	fyne.Do(func() {
		if name == "" {
			sb.userInfo.SetText("No user selected")
			return
		}
		sb.userInfo.SetText("User: " + name)
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
