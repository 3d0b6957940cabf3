package analysis

import (
	"testing"

	"glucose-monitor/internal/models"
)

func TestMealStatistics(t *testing.T) {
	readings := []models.GlucoseReading{
		{Meal: "Lunch", Level: 140},
		{Meal: "Breakfast", Level: 90},
		{Meal: "Breakfast", Level: 110},
		{Meal: "Lunch", Level: 160},
		{Meal: "Lunch", Level: 150},
	}

	got := MealStatistics(readings)
	if len(got) != 2 {
		t.Fatalf("got %d meal buckets, want 2", len(got))
	}

	// Buckets are ordered by meal name.
	breakfast := got[0]
	if breakfast.Meal != "Breakfast" {
		t.Fatalf("first bucket = %q, want Breakfast", breakfast.Meal)
	}
	if breakfast.Mean != 100 || breakfast.Min != 90 || breakfast.Max != 110 {
		t.Errorf("Breakfast = %+v", breakfast)
	}
	if breakfast.Count != 2 || breakfast.Range != 20 {
		t.Errorf("Breakfast count/range = %d/%v, want 2/20", breakfast.Count, breakfast.Range)
	}
	// Sample standard deviation of {90, 110} is sqrt(200) ≈ 14.14.
	if breakfast.StdDev != 14.14 {
		t.Errorf("Breakfast StdDev = %v, want 14.14", breakfast.StdDev)
	}

	lunch := got[1]
	if lunch.Meal != "Lunch" || lunch.Count != 3 || lunch.Mean != 150 {
		t.Errorf("Lunch = %+v", lunch)
	}
	if lunch.StdDev != 10 {
		t.Errorf("Lunch StdDev = %v, want 10 (sample std dev)", lunch.StdDev)
	}
}

func TestMealStatistics_SingleReadingBucket(t *testing.T) {
	got := MealStatistics([]models.GlucoseReading{{Meal: "Dinner", Level: 120}})
	if len(got) != 1 {
		t.Fatalf("got %d buckets, want 1", len(got))
	}
	if got[0].StdDev != 0 {
		t.Errorf("StdDev = %v, want 0 for single-reading bucket", got[0].StdDev)
	}
	if got[0].Range != 0 {
		t.Errorf("Range = %v, want 0", got[0].Range)
	}
}

func TestMealStatistics_Empty(t *testing.T) {
	if got := MealStatistics(nil); len(got) != 0 {
		t.Errorf("got %d buckets for empty input, want 0", len(got))
	}
}
