package models

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column names expected in glucose CSV datasets.
const (
	ColDate  = "Date"
	ColTime  = "Time"
	ColLevel = "Blood Glucose Level (mg/dL)"
	ColMeal  = "Meal"
	ColNotes = "Notes"
)

var timeLayouts = []string{"15:04", "15:04:05"}

// GlucoseReading is one row of a glucose dataset. Timestamp is derived from
// the Date and Time columns; Meal and Notes are empty when the dataset lacks
// those columns.
type GlucoseReading struct {
	Date      string
	Time      string
	Level     float64
	Meal      string
	Notes     string
	Timestamp time.Time
}

// Dataset is an externally supplied glucose CSV held read-only in memory.
type Dataset struct {
	Path     string
	Readings []GlucoseReading

	columns map[string]bool
}

// HasColumns reports whether every named column was present in the CSV
// header.
func (d *Dataset) HasColumns(names ...string) bool {
	for _, name := range names {
		if !d.columns[name] {
			return false
		}
	}
	return true
}

// MissingColumns returns the subset of names absent from the CSV header.
func (d *Dataset) MissingColumns(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !d.columns[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// LoadDataset parses a glucose CSV. The Date, Time and level columns are
// required; Meal and Notes are optional. Rows with an unparseable level or
// timestamp are rejected, matching the library behaviour the original data
// flow relied on.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	columns := make(map[string]bool, len(header))
	for i, name := range header {
		index[name] = i
		columns[name] = true
	}

	required := []string{ColDate, ColTime, ColLevel}
	for _, name := range required {
		if !columns[name] {
			return nil, fmt.Errorf("dataset missing required column %q", name)
		}
	}

	ds := &Dataset{Path: path, columns: columns}
	for line, row := range rows[1:] {
		reading, err := parseReading(row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line+2, err)
		}
		ds.Readings = append(ds.Readings, reading)
	}

	return ds, nil
}

func parseReading(row []string, index map[string]int) (GlucoseReading, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var reading GlucoseReading
	reading.Date = field(ColDate)
	reading.Time = field(ColTime)
	reading.Meal = field(ColMeal)
	reading.Notes = field(ColNotes)

	level, err := strconv.ParseFloat(strings.TrimSpace(field(ColLevel)), 64)
	if err != nil {
		return reading, fmt.Errorf("parsing glucose level %q: %w", field(ColLevel), err)
	}
	reading.Level = level

	ts, err := parseTimestamp(reading.Date, reading.Time)
	if err != nil {
		return reading, err
	}
	reading.Timestamp = ts

	return reading, nil
}

func parseTimestamp(date, clock string) (time.Time, error) {
	for _, layout := range timeLayouts {
		ts, err := time.Parse(DateLayout+" "+layout, date+" "+clock)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q %q", date, clock)
}
