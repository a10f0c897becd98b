package app

import (
	"context"
	"fmt"
	"time"

	"bmistation/internal/bmi"
	"bmistation/internal/domain"
	"bmistation/internal/logger"

	"go.uber.org/zap"
)

// MeasureService orchestrates the measurement pipeline: user lookup, device
// read, BMI computation, ledger append and profile update.
type MeasureService struct {
	users     domain.UserRepository
	ledger    domain.MeasurementRepository
	device    domain.DeviceReader
	publisher domain.MeasurementPublisher
	locks     *userLocks
}

// NewMeasureService creates a MeasureService. publisher may be nil, in which
// case recorded measurements are not published.
func NewMeasureService(users domain.UserRepository, ledger domain.MeasurementRepository, device domain.DeviceReader, publisher domain.MeasurementPublisher) *MeasureService {
	return &MeasureService{
		users:     users,
		ledger:    ledger,
		device:    device,
		publisher: publisher,
		locks:     newUserLocks(),
	}
}

// Probe obtains a single weight reading for the user without recording
// anything. It backs the standalone device-probe endpoint.
func (s *MeasureService) Probe(ctx context.Context, userID string) (float64, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return s.device.ReadWeight(ctx, userID)
}

// Measure runs the full pipeline for one user. heightOverride, when non-nil,
// is used instead of the stored default and must be within the valid range.
// The device read happens before the per-user lock is taken; ledger append
// and profile update happen under it. A failure before the append leaves the
// ledger and the profile untouched. The returned user is non-nil only when
// the stored profile changed.
func (s *MeasureService) Measure(ctx context.Context, userID string, heightOverride *float64) (*domain.Measurement, *domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}

	// Blocking external call; must not hold the user lock here.
	weight, err := s.device.ReadWeight(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	height := user.HeightCm
	if heightOverride != nil {
		h := *heightOverride
		if h < domain.MinHeightCm || h > domain.MaxHeightCm {
			return nil, nil, fmt.Errorf("%w: heightCm must be within [%v, %v]", domain.ErrValidation, domain.MinHeightCm, domain.MaxHeightCm)
		}
		height = h
	}

	result, err := bmi.Compute(height, weight)
	if err != nil {
		return nil, nil, err
	}

	mu := s.locks.get(userID)
	mu.Lock()
	defer mu.Unlock()

	m := &domain.Measurement{
		UserID:    userID,
		HeightCm:  height,
		WeightKg:  weight,
		Bmi:       result.Bmi,
		Category:  result.Category,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.ledger.Add(ctx, m)
	if err != nil {
		return nil, nil, err
	}
	m.ID = id

	var updated *domain.User
	if height != user.HeightCm || user.WeightKg == nil || *user.WeightKg != weight {
		updated, err = s.users.UpdateBody(ctx, userID, height, weight)
		if err != nil {
			return nil, nil, err
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMeasurement(ctx, m); err != nil {
			logger.Warn(ctx, "measurement publish failed", zap.String("userId", userID), zap.Error(err))
		}
	}
	return m, updated, nil
}

// Latest returns the most recent measurement for the user.
func (s *MeasureService) Latest(ctx context.Context, userID string) (*domain.Measurement, error) {
	m, err := s.ledger.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no measurement recorded for user %s", domain.ErrNotFound, userID)
	}
	return m, nil
}

// History returns the most recent measurements for the user, newest first.
func (s *MeasureService) History(ctx context.Context, userID string, limit int) ([]domain.Measurement, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return s.ledger.ListRecent(ctx, userID, limit)
}
