package views

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"glucose-monitor/internal/analysis"
	"glucose-monitor/internal/models"
)

// ShowInsightsWindow opens a window presenting the generated insights as
// collapsible sections, with a CSV export button at the bottom.
func ShowInsightsWindow(app fyne.App, insights *analysis.Insights, exportHandler func()) {
	window := app.NewWindow("Insights")

	accordion := widget.NewAccordion(
		widget.NewAccordionItem("Meal Statistics", mealStatsGrid(insights.MealStats)),
		widget.NewAccordionItem("Time in Range", timeInRangeBox(insights.TimeInRange)),
		widget.NewAccordionItem("Daily Averages", dailyAveragesBox(insights.DailyAverages)),
		widget.NewAccordionItem("Time Period Averages", periodAveragesBox(insights.PeriodAverages)),
		widget.NewAccordionItem("Highest Readings", extremesBox(insights.Highest)),
		widget.NewAccordionItem("Lowest Readings", extremesBox(insights.Lowest)),
	)
	accordion.MultiOpen = true
	accordion.Open(0)

	exportButton := widget.NewButton("Export to CSV", func() {
		if exportHandler != nil {
			exportHandler()
		}
	})

	thresholds := widget.NewLabel(fmt.Sprintf(
		"Thresholds: low %d mg/dL, high %d mg/dL",
		insights.LowThreshold, insights.HighThreshold))

	content := container.NewBorder(
		thresholds,
		exportButton,
		nil, nil,
		container.NewVScroll(accordion),
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(640, 560))
	window.Show()
}

func mealStatsGrid(mealStats []analysis.MealStat) fyne.CanvasObject {
	cells := []fyne.CanvasObject{
		boldLabel("Meal"), boldLabel("Mean"), boldLabel("Std Dev"),
		boldLabel("Min"), boldLabel("Max"), boldLabel("Count"), boldLabel("Range"),
	}
	for _, stat := range mealStats {
		cells = append(cells,
			widget.NewLabel(stat.Meal),
			widget.NewLabel(formatNumber(stat.Mean)),
			widget.NewLabel(formatNumber(stat.StdDev)),
			widget.NewLabel(formatNumber(stat.Min)),
			widget.NewLabel(formatNumber(stat.Max)),
			widget.NewLabel(strconv.Itoa(stat.Count)),
			widget.NewLabel(formatNumber(stat.Range)),
		)
	}
	return container.NewGridWithColumns(7, cells...)
}

func timeInRangeBox(ranges map[analysis.Category]float64) fyne.CanvasObject {
	box := container.NewVBox()
	for _, category := range analysis.Categories {
		box.Add(widget.NewLabel(fmt.Sprintf("%s: %.1f%%",
			category, ranges[category])))
	}
	return box
}

func dailyAveragesBox(averages []analysis.DailyAverage) fyne.CanvasObject {
	box := container.NewVBox()
	for _, avg := range averages {
		box.Add(widget.NewLabel(fmt.Sprintf("%s: %.2f mg/dL",
			avg.Date, avg.Mean)))
	}
	return box
}

func periodAveragesBox(averages []analysis.PeriodAverage) fyne.CanvasObject {
	box := container.NewVBox()
	for _, avg := range averages {
		text := avg.Period.Name + " (" + avg.Period.Label + "): no readings"
		if avg.HasData {
			text = fmt.Sprintf("%s (%s): %.2f mg/dL",
				avg.Period.Name, avg.Period.Label, avg.Mean)
		}
		box.Add(widget.NewLabel(text))
	}
	return box
}

func extremesBox(readings []models.GlucoseReading) fyne.CanvasObject {
	box := container.NewVBox()
	for _, reading := range readings {
		text := fmt.Sprintf("%s %s: %s mg/dL",
			reading.Date, reading.Time, formatNumber(reading.Level))
		if reading.Notes != "" {
			text += " (" + reading.Notes + ")"
		}
		box.Add(widget.NewLabel(text))
	}
	return box
}

func boldLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.TextStyle.Bold = true
	return label
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
