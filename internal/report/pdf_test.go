package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"bmistation/internal/domain"
	"bmistation/internal/report"
)

func testUser() *domain.User {
	w := 60.0
	return &domain.User{
		ID: "u-1", Name: "Jane", Age: 30, Gender: domain.GenderFemale,
		HeightCm: 165, WeightKg: &w, CreatedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func testMeasurement() *domain.Measurement {
	return &domain.Measurement{
		ID: 1, UserID: "u-1", HeightCm: 165, WeightKg: 60,
		Bmi: 22.04, Category: "Normal",
		CreatedAt: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	r := report.NewPDFRenderer()
	doc, err := r.Render(testUser(), testMeasurement())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("expected non-empty document")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", doc[:8])
	}
}

func TestRender_MissingMeasurement(t *testing.T) {
	r := report.NewPDFRenderer()
	_, err := r.Render(testUser(), nil)
	if !errors.Is(err, domain.ErrReport) {
		t.Fatalf("expected report error, got %v", err)
	}
}

func TestRender_MissingUser(t *testing.T) {
	r := report.NewPDFRenderer()
	_, err := r.Render(nil, testMeasurement())
	if !errors.Is(err, domain.ErrReport) {
		t.Fatalf("expected report error, got %v", err)
	}
}
