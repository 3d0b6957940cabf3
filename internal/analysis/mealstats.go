package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"glucose-monitor/internal/models"
)

// MealStat holds the descriptive statistics of glucose readings for one meal
// bucket. All values are rounded to 2 decimals.
type MealStat struct {
	Meal   string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Count  int
	Range  float64
}

// MealStatistics groups readings by meal and computes mean, sample standard
// deviation, min, max, count and range per bucket, ordered by meal name.
// A bucket with a single reading has a standard deviation of 0.
func MealStatistics(readings []models.GlucoseReading) []MealStat {
	groups := map[string][]float64{}
	for _, r := range readings {
		groups[r.Meal] = append(groups[r.Meal], r.Level)
	}

	meals := make([]string, 0, len(groups))
	for meal := range groups {
		meals = append(meals, meal)
	}
	sort.Strings(meals)

	result := make([]MealStat, 0, len(meals))
	for _, meal := range meals {
		levels := groups[meal]

		mean, _ := stats.Mean(levels)
		min, _ := stats.Min(levels)
		max, _ := stats.Max(levels)

		stddev := 0.0
		if len(levels) > 1 {
			stddev, _ = stats.StdDevS(levels)
		}

		result = append(result, MealStat{
			Meal:   meal,
			Mean:   round2(mean),
			StdDev: round2(stddev),
			Min:    round2(min),
			Max:    round2(max),
			Count:  len(levels),
			Range:  round2(max - min),
		})
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
