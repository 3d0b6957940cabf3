package components

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DatePicker is a month-grid calendar pop-up for choosing a date of birth.
// Selection is capped at today.
type DatePicker struct {
	window   fyne.Window
	callback func(time.Time)

	year  int
	month time.Month
	today time.Time

	yearSelect  *widget.Select
	monthSelect *widget.Select
	dayGrid     *fyne.Container
	dialog      dialog.Dialog
}

// ShowDatePicker opens the calendar dialog. The callback receives the chosen
// date; it is not called when the user dismisses the dialog.
func ShowDatePicker(window fyne.Window, callback func(time.Time)) {
	today := time.Now()
	dp := &DatePicker{
		window:   window,
		callback: callback,
		year:     2000,
		month:    time.January,
		today:    today,
	}

	years := make([]string, 0, today.Year()-1899)
	for y := today.Year(); y >= 1900; y-- {
		years = append(years, strconv.Itoa(y))
	}
	dp.yearSelect = widget.NewSelect(years, func(selected string) {
		dp.year, _ = strconv.Atoi(selected)
		dp.rebuildDays()
	})
	dp.yearSelect.SetSelected(strconv.Itoa(dp.year))

	dp.monthSelect = widget.NewSelect(monthNames, func(selected string) {
		for i, name := range monthNames {
			if name == selected {
				dp.month = time.Month(i + 1)
				break
			}
		}
		dp.rebuildDays()
	})
	dp.monthSelect.SetSelected(monthNames[0])

	dp.dayGrid = container.NewGridWithColumns(7)
	dp.rebuildDays()

	content := container.NewVBox(
		container.NewHBox(dp.monthSelect, dp.yearSelect),
		dp.dayGrid,
	)
	dp.dialog = dialog.NewCustom("Select Date of Birth", "Cancel", content, window)
	dp.dialog.Show()
}

// rebuildDays refreshes the day grid for the selected year and month.
func (dp *DatePicker) rebuildDays() {
	if dp.dayGrid == nil {
		return
	}
	dp.dayGrid.Objects = nil

	for _, name := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		label := widget.NewLabel(name)
		label.TextStyle.Bold = true
		dp.dayGrid.Add(label)
	}

	first := time.Date(dp.year, dp.month, 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column offset.
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		dp.dayGrid.Add(widget.NewLabel(""))
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(dp.year, dp.month, day, 0, 0, 0, 0, time.UTC)
		button := widget.NewButton(fmt.Sprintf("%d", day), func() {
			dp.dialog.Hide()
			dp.callback(date)
		})
		if afterToday(date, dp.today) {
			button.Disable()
		}
		dp.dayGrid.Add(button)
	}

	dp.dayGrid.Refresh()
}

func afterToday(date, today time.Time) bool {
	y, m, d := today.Date()
	endOfToday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return date.After(endOfToday)
}
