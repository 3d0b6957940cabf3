package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glucose-monitor/internal/models"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warning(string, map[string]interface{})      {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

func testDataset(t *testing.T) *models.Dataset {
	t.Helper()
	lines := []string{
		"Date,Time,Blood Glucose Level (mg/dL),Meal,Notes",
		"2026-01-05,07:30,65,Breakfast,",
		"2026-01-05,13:00,140,Lunch,",
		"2026-01-05,19:30,210,Dinner,pizza",
		"2026-01-06,07:30,95,Breakfast,",
	}
	path := filepath.Join(t.TempDir(), "glucose.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	ds, err := models.LoadDataset(path)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func testUsers() map[string]models.UserProfile {
	return map[string]models.UserProfile{
		"Alice": {Gender: "Female", Age: 35, BMI: 21.79, DiabetesType: "Type 1"},
		"Bob":   {Gender: "Male", Age: 52, BMI: 27.4, DiabetesType: "Type 2"},
		"Carol": {Gender: "Female", Age: 44, BMI: 24.1, DiabetesType: "Type 2"},
	}
}

func assertRenders(t *testing.T, chart *Chart) {
	t.Helper()
	img := chart.Image(800, 500)
	if img == nil {
		t.Fatal("Image returned nil")
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatalf("empty image bounds %v", img.Bounds())
	}

	var buf bytes.Buffer
	if err := chart.WritePDF(&buf); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("PDF export missing %PDF header")
	}
}

func TestLevelsOverTime(t *testing.T) {
	chart, err := NewRenderer(nopLogger{}).LevelsOverTime(testDataset(t), 70, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRenders(t, chart)
}

func TestLevelsOverTime_EmptyDataset(t *testing.T) {
	ds := &models.Dataset{}
	if _, err := NewRenderer(nopLogger{}).LevelsOverTime(ds, 70, 180); err == nil {
		t.Fatal("expected error for empty dataset")
	}
}

func TestLevelsByMeal(t *testing.T) {
	chart, err := NewRenderer(nopLogger{}).LevelsByMeal(testDataset(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRenders(t, chart)
}

func TestLevelsByMeal_MissingColumn(t *testing.T) {
	lines := []string{
		"Date,Time,Blood Glucose Level (mg/dL)",
		"2026-01-05,07:30,95",
	}
	path := filepath.Join(t.TempDir(), "glucose.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	ds, err := models.LoadDataset(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewRenderer(nopLogger{}).LevelsByMeal(ds); err == nil {
		t.Fatal("expected error for dataset without Meal column")
	}
}

func TestBMIAllUsers(t *testing.T) {
	chart, err := NewRenderer(nopLogger{}).BMIAllUsers(testUsers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRenders(t, chart)
}

func TestBMIAllUsers_NoUsers(t *testing.T) {
	if _, err := NewRenderer(nopLogger{}).BMIAllUsers(nil); err == nil {
		t.Fatal("expected error for empty user set")
	}
}

func TestAvgBMIByType(t *testing.T) {
	chart, err := NewRenderer(nopLogger{}).AvgBMIByType(testUsers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRenders(t, chart)
}

func TestAgeDistributionByType(t *testing.T) {
	chart, err := NewRenderer(nopLogger{}).AgeDistributionByType(testUsers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRenders(t, chart)
}

func TestGenderDistributionByType(t *testing.T) {
	chart, err := NewRenderer(nopLogger{}).GenderDistributionByType(testUsers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRenders(t, chart)
}
