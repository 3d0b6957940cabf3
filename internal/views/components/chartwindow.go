package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"glucose-monitor/internal/charts"
)

const (
	chartWindowWidth  = 800
	chartWindowHeight = 600
)

// ShowChartWindow opens a chart in its own window with a save button. The
// save handler runs the PDF export flow.
func ShowChartWindow(app fyne.App, chart *charts.Chart, saveHandler func(*charts.Chart)) {
	window := app.NewWindow(chart.Title)
	window.Resize(fyne.NewSize(chartWindowWidth, chartWindowHeight))

	img := canvas.NewImageFromImage(chart.Image(chartWindowWidth, chartWindowHeight-60))
	img.FillMode = canvas.ImageFillContain

	saveButton := widget.NewButton("Save Graph", func() {
		saveHandler(chart)
	})

	window.SetContent(container.NewBorder(nil, container.NewCenter(saveButton), nil, nil, img))
	window.Show()
}
