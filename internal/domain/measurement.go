package domain

import (
	"context"
	"time"
)

// Measurement is one immutable computed BMI record tied to a user and a
// point in time. Bmi and Category are derived once from this entry's own
// HeightCm and WeightKg and never recomputed.
type Measurement struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	HeightCm  float64   `json:"heightCm"`
	WeightKg  float64   `json:"weightKg"`
	Bmi       float64   `json:"bmi"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeasurementRepository is the port for the append-only measurement ledger.
// Latest returns (nil, nil) when the user has no measurements yet.
type MeasurementRepository interface {
	Add(ctx context.Context, m *Measurement) (int64, error)
	Latest(ctx context.Context, userID string) (*Measurement, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]Measurement, error)
}

// DeviceReader obtains a single weight reading from an external measuring
// source. Implementations must reject non-numeric, non-finite or
// non-positive readings with ErrDevice rather than coerce them.
type DeviceReader interface {
	ReadWeight(ctx context.Context, userID string) (float64, error)
}

// MeasurementPublisher emits recorded measurements to downstream consumers.
type MeasurementPublisher interface {
	PublishMeasurement(ctx context.Context, m *Measurement) error
}

// ReportRenderer turns a user and their measurement into a binary document.
type ReportRenderer interface {
	Render(user *User, m *Measurement) ([]byte, error)
}
