package bmi_test

import (
	"errors"
	"math"
	"testing"

	"bmistation/internal/bmi"
	"bmistation/internal/domain"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		wantBmi  float64
		wantCat  string
	}{
		{"normal", 165, 60, 22.04, bmi.CategoryNormal},
		{"underweight", 180, 55, 16.98, bmi.CategoryUnderweight},
		{"overweight", 170, 75, 25.95, bmi.CategoryOverweight},
		{"obese", 160, 90, 35.16, bmi.CategoryObese},
		{"normal boundary inclusive", 170, 53.465, 18.5, bmi.CategoryNormal},
		{"just below normal boundary", 170, 53.4, 18.48, bmi.CategoryUnderweight},
		{"overweight boundary inclusive", 200, 100, 25, bmi.CategoryOverweight},
		{"obese boundary inclusive", 100, 30, 30, bmi.CategoryObese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bmi.Compute(tc.heightCm, tc.weightKg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Bmi != tc.wantBmi {
				t.Errorf("bmi = %v, want %v", got.Bmi, tc.wantBmi)
			}
			if got.Category != tc.wantCat {
				t.Errorf("category = %q, want %q", got.Category, tc.wantCat)
			}
		})
	}
}

func TestCompute_InvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 70},
		{"zero weight", 170, 0},
		{"negative height", -170, 70},
		{"negative weight", 170, -5},
		{"nan height", math.NaN(), 70},
		{"inf weight", 170, math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bmi.Compute(tc.heightCm, tc.weightKg)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
