package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"glucose-monitor/internal/models"
)

// Category is a glucose level bin relative to the session thresholds.
type Category string

const (
	CategoryLow    Category = "Low"
	CategoryNormal Category = "Normal"
	CategoryHigh   Category = "High"
)

// Categories lists the bins in display order.
var Categories = []Category{CategoryLow, CategoryNormal, CategoryHigh}

// Categorize assigns a reading to Low (0, low], Normal (low, high] or
// High (high, ∞). A value exactly on a boundary falls to the lower bin.
func Categorize(level float64, low, high int) Category {
	switch {
	case level <= float64(low):
		return CategoryLow
	case level <= float64(high):
		return CategoryNormal
	default:
		return CategoryHigh
	}
}

// TimeInRange returns the percentage of readings per category. Every
// category appears in the result, at 0 when no reading falls into it.
func TimeInRange(readings []models.GlucoseReading, low, high int) map[Category]float64 {
	counts := map[Category]int{}
	for _, r := range readings {
		counts[Categorize(r.Level, low, high)]++
	}

	result := map[Category]float64{}
	total := len(readings)
	for _, cat := range Categories {
		if total == 0 {
			result[cat] = 0
			continue
		}
		result[cat] = float64(counts[cat]) / float64(total) * 100
	}
	return result
}

// DailyAverage is the mean glucose level of one calendar date.
type DailyAverage struct {
	Date string
	Mean float64
}

// DailyAverages buckets readings by calendar date and returns the mean per
// date in chronological order. Dates without readings are omitted.
func DailyAverages(readings []models.GlucoseReading) []DailyAverage {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range readings {
		date := r.Timestamp.Format(models.DateLayout)
		sums[date] += r.Level
		counts[date]++
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]DailyAverage, 0, len(dates))
	for _, date := range dates {
		result = append(result, DailyAverage{Date: date, Mean: sums[date] / float64(counts[date])})
	}
	return result
}

// TimePeriod is a fixed time-of-day bucket, half-open [Start, End) in
// minutes since midnight. Night wraps past midnight.
type TimePeriod struct {
	Name  string
	Label string
	Start int
	End   int
}

// TimePeriods lists the time-of-day buckets in display order.
var TimePeriods = []TimePeriod{
	{Name: "Morning", Label: "06:00-09:00", Start: 6 * 60, End: 9 * 60},
	{Name: "Noon", Label: "09:00-12:00", Start: 9 * 60, End: 12 * 60},
	{Name: "Afternoon", Label: "12:00-18:00", Start: 12 * 60, End: 18 * 60},
	{Name: "Evening", Label: "18:00-21:00", Start: 18 * 60, End: 21 * 60},
	{Name: "Night", Label: "21:00-06:00", Start: 21 * 60, End: 6 * 60},
}

// Contains reports whether the clock time (minutes since midnight) falls in
// the period.
func (p TimePeriod) Contains(minuteOfDay int) bool {
	if p.Start <= p.End {
		return minuteOfDay >= p.Start && minuteOfDay < p.End
	}
	// Wrapping period.
	return minuteOfDay >= p.Start || minuteOfDay < p.End
}

// PeriodAverage is the mean glucose level of one time-of-day bucket. HasData
// is false when no reading fell into the period.
type PeriodAverage struct {
	Period  TimePeriod
	Mean    float64
	HasData bool
}

// TimePeriodAverages computes the mean level per time-of-day bucket, in
// display order.
func TimePeriodAverages(readings []models.GlucoseReading) []PeriodAverage {
	result := make([]PeriodAverage, 0, len(TimePeriods))
	for _, period := range TimePeriods {
		var levels []float64
		for _, r := range readings {
			minute := r.Timestamp.Hour()*60 + r.Timestamp.Minute()
			if period.Contains(minute) {
				levels = append(levels, r.Level)
			}
		}

		avg := PeriodAverage{Period: period}
		if len(levels) > 0 {
			mean, _ := stats.Mean(levels)
			avg.Mean = mean
			avg.HasData = true
		}
		result = append(result, avg)
	}
	return result
}

// Extremes returns the n highest and n lowest readings by glucose level.
// Ties keep dataset order.
func Extremes(readings []models.GlucoseReading, n int) (highest, lowest []models.GlucoseReading) {
	byLevel := make([]models.GlucoseReading, len(readings))
	copy(byLevel, readings)

	sort.SliceStable(byLevel, func(i, j int) bool { return byLevel[i].Level > byLevel[j].Level })
	if len(byLevel) < n {
		n = len(byLevel)
	}
	highest = append(highest, byLevel[:n]...)

	sort.SliceStable(byLevel, func(i, j int) bool { return byLevel[i].Level < byLevel[j].Level })
	lowest = append(lowest, byLevel[:n]...)

	return highest, lowest
}
