package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bmistation/internal/domain"
)

// Add appends a measurement and returns its assigned id.
func (d *DB) Add(ctx context.Context, m *domain.Measurement) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO measurements(user_id, height_cm, weight_kg, bmi, category, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		m.UserID, m.HeightCm, m.WeightKg, m.Bmi, m.Category, m.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// Latest returns the newest measurement for a user, nil when none exists.
// Timestamp ties are broken by id, which follows insertion order.
func (d *DB) Latest(ctx context.Context, userID string) (*domain.Measurement, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, height_cm, weight_kg, bmi, category, created_at FROM measurements WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1;",
		userID)

	var m domain.Measurement
	if err := row.Scan(&m.ID, &m.UserID, &m.HeightCm, &m.WeightKg, &m.Bmi, &m.Category, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListRecent returns up to limit measurements for a user, newest first.
func (d *DB) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Measurement, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, height_cm, weight_kg, bmi, category, created_at FROM measurements WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Measurement, 0, limit)
	for rows.Next() {
		var m domain.Measurement
		if err := rows.Scan(&m.ID, &m.UserID, &m.HeightCm, &m.WeightKg, &m.Bmi, &m.Category, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
