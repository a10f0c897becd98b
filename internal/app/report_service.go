package app

import (
	"context"
	"fmt"

	"bmistation/internal/domain"
)

// ReportService produces the downloadable report for a user's latest
// measurement.
type ReportService struct {
	users    domain.UserRepository
	ledger   domain.MeasurementRepository
	renderer domain.ReportRenderer
}

// NewReportService creates a ReportService backed by the given ports.
func NewReportService(users domain.UserRepository, ledger domain.MeasurementRepository, renderer domain.ReportRenderer) *ReportService {
	return &ReportService{users: users, ledger: ledger, renderer: renderer}
}

// Report renders the latest measurement for the user into a binary document.
func (s *ReportService) Report(ctx context.Context, userID string) ([]byte, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}

	m, err := s.ledger.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no measurement recorded for user %s", domain.ErrNotFound, userID)
	}

	doc, err := s.renderer.Render(user, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReport, err)
	}
	return doc, nil
}
