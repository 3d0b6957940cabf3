package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"glucose-monitor/internal/models"
)

// extremeCount is how many highest/lowest readings the insights report keeps.
const extremeCount = 5

// Insights is the full analysis of one dataset against a threshold pair.
type Insights struct {
	LowThreshold  int
	HighThreshold int

	MealStats      []MealStat
	TimeInRange    map[Category]float64
	DailyAverages  []DailyAverage
	PeriodAverages []PeriodAverage
	Highest        []models.GlucoseReading
	Lowest         []models.GlucoseReading
}

// GenerateInsights runs the full analysis. The dataset must carry the Meal
// column in addition to the always-required timestamp and level columns.
func GenerateInsights(ds *models.Dataset, low, high int) (*Insights, error) {
	if missing := ds.MissingColumns(models.ColMeal, models.ColLevel); len(missing) > 0 {
		return nil, fmt.Errorf("dataset does not have the required columns %v", missing)
	}
	if low >= high {
		return nil, fmt.Errorf("low threshold %d must be below high threshold %d", low, high)
	}

	highest, lowest := Extremes(ds.Readings, extremeCount)

	return &Insights{
		LowThreshold:   low,
		HighThreshold:  high,
		MealStats:      MealStatistics(ds.Readings),
		TimeInRange:    TimeInRange(ds.Readings, low, high),
		DailyAverages:  DailyAverages(ds.Readings),
		PeriodAverages: TimePeriodAverages(ds.Readings),
		Highest:        highest,
		Lowest:         lowest,
	}, nil
}

// WriteCSV serializes the insights as a sectioned CSV report: meal
// statistics, time in range, daily averages, then one block per time-of-day
// period.
func (ins *Insights) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Meal Statistics"},
		{"Meal", "Mean", "Std Dev", "Min", "Max", "Count", "Range"},
	}
	for _, ms := range ins.MealStats {
		rows = append(rows, []string{
			ms.Meal,
			formatFloat(ms.Mean),
			formatFloat(ms.StdDev),
			formatFloat(ms.Min),
			formatFloat(ms.Max),
			strconv.Itoa(ms.Count),
			formatFloat(ms.Range),
		})
	}

	rows = append(rows, nil,
		[]string{"Time in Range"},
		[]string{"Category", "Percentage (%)"})
	for _, cat := range Categories {
		rows = append(rows, []string{string(cat), formatFloat(round2(ins.TimeInRange[cat]))})
	}

	rows = append(rows, nil,
		[]string{"Daily Averages"},
		[]string{"Date", "Average Glucose (mg/dL)"})
	for _, da := range ins.DailyAverages {
		rows = append(rows, []string{da.Date, formatFloat(round2(da.Mean))})
	}

	for _, pa := range ins.PeriodAverages {
		rows = append(rows, nil,
			[]string{pa.Period.Name + " Average"},
			[]string{"Time Period", "Average Glucose (mg/dL)"})
		value := ""
		if pa.HasData {
			value = formatFloat(round2(pa.Mean))
		}
		rows = append(rows, []string{pa.Period.Label, value})
	}

	for _, row := range rows {
		if row == nil {
			row = []string{""}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing insights report: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
