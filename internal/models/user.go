package models

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// GenderOptions lists the selectable genders for the profile form.
var GenderOptions = []string{"Male", "Female", "Other"}

// DiabetesTypeOptions lists the selectable diabetes types for the profile form.
var DiabetesTypeOptions = []string{
	"Type 1",
	"Type 2",
	"Gestational Diabetes",
	"LADA (Latent autoimmune diabetes in adults)",
	"MODY (Maturity Onset Diabetes of the Young)",
	"Neonatal Diabetes",
	"Cystic Fibrosis-related Diabetes",
	"Steroid-induced Diabetes",
	"Other",
}

// UserProfile is a single user's health record. Age and BMI are derived at
// save time from DOB and weight/height and are never set directly.
type UserProfile struct {
	Gender       string  `json:"gender"`
	DOB          string  `json:"dob"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	BMI          float64 `json:"bmi"`
	DiabetesType string  `json:"diabetes_type"`
}

// ComputeBMI returns weight(kg) / height(m)² for a height given in cm.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %v", weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be positive, got %v", heightCm)
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// ComputeAge returns the whole years between dob and now, decrementing when
// the birthday has not yet occurred this year.
func ComputeAge(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// NewUserProfile validates the form inputs and builds a profile with derived
// age and BMI. The reference time is used for age computation so callers and
// tests control "today".
func NewUserProfile(gender, dob string, weightKg, heightCm float64, diabetesType string, now time.Time) (UserProfile, error) {
	birth, err := time.Parse(DateLayout, dob)
	if err != nil {
		return UserProfile{}, fmt.Errorf("parsing date of birth %q: %w", dob, err)
	}
	if birth.After(now) {
		return UserProfile{}, fmt.Errorf("date of birth %s is in the future", dob)
	}

	bmi, err := ComputeBMI(weightKg, heightCm)
	if err != nil {
		return UserProfile{}, err
	}

	return UserProfile{
		Gender:       gender,
		DOB:          dob,
		Age:          ComputeAge(birth, now),
		Weight:       weightKg,
		Height:       heightCm,
		BMI:          roundTo(bmi, 2),
		DiabetesType: diabetesType,
	}, nil
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
