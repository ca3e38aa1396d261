// Package metrics holds the deterministic health calculators. All
// functions are pure; nothing here touches the store.
package metrics

import (
	"fmt"
	"math"

	"github.com/telecare/telecare/internal/platform/apperr"
)

// BMI computes the body mass index message for a weight in kilograms
// and a height in meters.
func BMI(weightKg, heightM float64) (string, error) {
	if heightM == 0 {
		return "", apperr.InvalidPayload("height cannot be zero")
	}
	bmi := weightKg / (heightM * heightM)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return "", apperr.InvalidPayload("height cannot be zero")
	}
	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 24.9:
		category = "Normal Weight"
	case bmi < 29.9:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return fmt.Sprintf("BMI is %.2f - %s", bmi, category), nil
}

// Dosage computes a total dose from the patient weight and the dose
// per kilogram. Integer arithmetic, no rounding.
func Dosage(weightKg, dosagePerKg int) int {
	return weightKg * dosagePerKg
}

// InsuranceEstimate applies a 20% discount to the base cost when the
// patient is insured and rounds to the nearest whole amount.
func InsuranceEstimate(baseCost float64, insured bool) int {
	cost := baseCost
	if insured {
		cost = baseCost - baseCost*0.20
	}
	return int(math.Round(cost))
}

// RiskScore weighs age, BMI and blood pressure into a health risk
// message.
func RiskScore(age, bmi, bloodPressure float64) string {
	score := age*0.3 + bmi*0.5 + bloodPressure*0.2
	var level string
	switch {
	case score < 20:
		level = "Low"
	case score < 30:
		level = "Moderate"
	default:
		level = "High"
	}
	return fmt.Sprintf("Health Risk Score: %.2f - %s", score, level)
}
