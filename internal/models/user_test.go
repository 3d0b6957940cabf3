package models

import (
	"math"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"average adult", 70, 175, 22.857142857142858},
		{"tall light", 60, 190, 16.620498614958448},
		{"one meter", 50, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBMI(tt.weightKg, tt.heightCm)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeBMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}

func TestComputeBMI_RejectsNonPositive(t *testing.T) {
	if _, err := ComputeBMI(0, 175); err == nil {
		t.Error("expected error for zero weight")
	}
	if _, err := ComputeBMI(70, 0); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := ComputeBMI(-5, 175); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestComputeAge_BirthdayBoundaries(t *testing.T) {
	dob := mustDate(t, "1990-06-15")
	tests := []struct {
		now  string
		want int
	}{
		{"2020-06-14", 29}, // day before birthday
		{"2020-06-15", 30}, // on the birthday
		{"2020-06-16", 30}, // day after
		{"2020-05-20", 29}, // earlier month
		{"2020-07-01", 30}, // later month
	}
	for _, tt := range tests {
		got := ComputeAge(dob, mustDate(t, tt.now))
		if got != tt.want {
			t.Errorf("ComputeAge(1990-06-15, %s) = %d, want %d", tt.now, got, tt.want)
		}
	}
}

func TestNewUserProfile_DerivesFields(t *testing.T) {
	now := mustDate(t, "2026-01-10")
	p, err := NewUserProfile("Female", "1990-04-12", 61.5, 168, "Type 1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Age != 35 {
		t.Errorf("Age = %d, want 35", p.Age)
	}
	if p.BMI != 21.79 {
		t.Errorf("BMI = %v, want 21.79", p.BMI)
	}
	if p.Height != 168 || p.Weight != 61.5 {
		t.Errorf("stored weight/height = %v/%v, want 61.5/168", p.Weight, p.Height)
	}
}

func TestNewUserProfile_Invalid(t *testing.T) {
	now := mustDate(t, "2026-01-10")
	if _, err := NewUserProfile("Male", "12/04/1990", 70, 175, "Type 2", now); err == nil {
		t.Error("expected error for malformed date of birth")
	}
	if _, err := NewUserProfile("Male", "2030-01-01", 70, 175, "Type 2", now); err == nil {
		t.Error("expected error for future date of birth")
	}
	if _, err := NewUserProfile("Male", "1990-04-12", -1, 175, "Type 2", now); err == nil {
		t.Error("expected error for negative weight")
	}
}
