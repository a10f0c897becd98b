package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"bmistation/internal/app"
	"bmistation/internal/domain"
)

type mockRenderer struct {
	renderFn func(user *domain.User, m *domain.Measurement) ([]byte, error)
}

func (r *mockRenderer) Render(user *domain.User, m *domain.Measurement) ([]byte, error) {
	if r.renderFn != nil {
		return r.renderFn(user, m)
	}
	return []byte("%PDF-stub"), nil
}

func TestReport_Success(t *testing.T) {
	ledger := &mockLedger{
		latest: &domain.Measurement{ID: 1, UserID: "u-1", Bmi: 22.04, Category: "Normal"},
	}
	svc := app.NewReportService(userRepoWith(storedUser()), ledger, &mockRenderer{})

	doc, err := svc.Report(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("unexpected document: %q", doc)
	}
}

func TestReport_UnknownUser(t *testing.T) {
	svc := app.NewReportService(userRepoWith(nil), &mockLedger{}, &mockRenderer{})
	_, err := svc.Report(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReport_NoMeasurement(t *testing.T) {
	svc := app.NewReportService(userRepoWith(storedUser()), &mockLedger{}, &mockRenderer{})
	_, err := svc.Report(context.Background(), "u-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReport_RenderFailure(t *testing.T) {
	ledger := &mockLedger{latest: &domain.Measurement{ID: 1, UserID: "u-1"}}
	renderer := &mockRenderer{
		renderFn: func(*domain.User, *domain.Measurement) ([]byte, error) {
			return nil, errors.New("font missing")
		},
	}
	svc := app.NewReportService(userRepoWith(storedUser()), ledger, renderer)
	_, err := svc.Report(context.Background(), "u-1")
	if !errors.Is(err, domain.ErrReport) {
		t.Fatalf("expected report error, got %v", err)
	}
}
