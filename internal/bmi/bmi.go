// Package bmi computes Body Mass Index values and their WHO classification.
package bmi

import (
	"fmt"
	"math"

	"bmistation/internal/domain"
)

// Category names for the WHO classification bands.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// Result is a computed BMI value and its classification.
type Result struct {
	Bmi      float64
	Category string
}

// Compute returns the BMI for a height in centimeters and a weight in
// kilograms. The category is derived from the unrounded value with inclusive
// lower bounds; the returned Bmi is rounded to two decimals half away from
// zero. Both inputs must be strictly positive finite numbers.
func Compute(heightCm, weightKg float64) (Result, error) {
	if !isPositiveFinite(heightCm) {
		return Result{}, fmt.Errorf("%w: heightCm must be a positive number, got %v", domain.ErrValidation, heightCm)
	}
	if !isPositiveFinite(weightKg) {
		return Result{}, fmt.Errorf("%w: weightKg must be a positive number, got %v", domain.ErrValidation, weightKg)
	}

	heightM := heightCm / 100
	raw := weightKg / (heightM * heightM)

	return Result{
		Bmi:      math.Round(raw*100) / 100,
		Category: categorize(raw),
	}, nil
}

func categorize(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
