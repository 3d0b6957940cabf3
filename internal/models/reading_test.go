package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glucose.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDataset_FullColumns(t *testing.T) {
	path := writeCSV(t,
		"Date,Time,Blood Glucose Level (mg/dL),Meal,Notes",
		"2026-01-05,07:30,95,Breakfast,fasting",
		"2026-01-05,13:00,140.5,Lunch,",
	)

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Readings) != 2 {
		t.Fatalf("got %d readings, want 2", len(ds.Readings))
	}

	r := ds.Readings[0]
	if r.Level != 95 || r.Meal != "Breakfast" || r.Notes != "fasting" {
		t.Errorf("first reading = %+v", r)
	}
	if got := r.Timestamp.Format("2006-01-02 15:04"); got != "2026-01-05 07:30" {
		t.Errorf("Timestamp = %s, want 2026-01-05 07:30", got)
	}
	if !ds.HasColumns(ColMeal, ColNotes) {
		t.Error("expected Meal and Notes columns to be present")
	}
}

func TestLoadDataset_WithoutOptionalColumns(t *testing.T) {
	path := writeCSV(t,
		"Date,Time,Blood Glucose Level (mg/dL)",
		"2026-01-05,07:30,95",
	)

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.HasColumns(ColMeal) {
		t.Error("Meal column should be absent")
	}
	if missing := ds.MissingColumns(ColMeal, ColLevel); len(missing) != 1 || missing[0] != ColMeal {
		t.Errorf("MissingColumns = %v, want [Meal]", missing)
	}
	if ds.Readings[0].Meal != "" || ds.Readings[0].Notes != "" {
		t.Error("optional fields should be empty when columns are absent")
	}
}

func TestLoadDataset_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t,
		"Date,Glucose,Meal",
		"2026-01-05,95,Breakfast",
	)

	if _, err := LoadDataset(path); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

func TestLoadDataset_UnparseableLevel(t *testing.T) {
	path := writeCSV(t,
		"Date,Time,Blood Glucose Level (mg/dL)",
		"2026-01-05,07:30,high",
	)

	if _, err := LoadDataset(path); err == nil {
		t.Fatal("expected error for unparseable glucose level")
	}
}

func TestLoadDataset_SecondsInTimeColumn(t *testing.T) {
	path := writeCSV(t,
		"Date,Time,Blood Glucose Level (mg/dL)",
		"2026-01-05,07:30:15,95",
	)

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ds.Readings[0].Timestamp.Format("15:04:05"); got != "07:30:15" {
		t.Errorf("Timestamp clock = %s, want 07:30:15", got)
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
