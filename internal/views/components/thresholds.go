package components

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowThresholdDialog asks for the low and high glucose boundaries. The
// callback receives the validated pair; it is not called when the user
// cancels.
func ShowThresholdDialog(window fyne.Window, lowInitial, highInitial int, callback func(low, high int)) {
	lowEntry := widget.NewEntry()
	lowEntry.SetText(strconv.Itoa(lowInitial))
	highEntry := widget.NewEntry()
	highEntry.SetText(strconv.Itoa(highInitial))

	items := []*widget.FormItem{
		widget.NewFormItem("Low Threshold", lowEntry),
		widget.NewFormItem("High Threshold", highEntry),
	}

	dialog.ShowForm("Set Thresholds", "Confirm", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		low, lowErr := strconv.Atoi(lowEntry.Text)
		high, highErr := strconv.Atoi(highEntry.Text)
		if lowErr != nil || highErr != nil {
			dialog.ShowError(fmt.Errorf("please enter valid integers"), window)
			return
		}
		if low >= high {
			dialog.ShowError(fmt.Errorf("low threshold must be below high threshold"), window)
			return
		}

		callback(low, high)
	}, window)
}
