package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bmistation/internal/domain"
)

// Create inserts a new user.
func (d *DB) Create(ctx context.Context, user *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users(id, name, age, gender, height_cm, weight_kg, created_at) VALUES($1, $2, $3, $4, $5, $6, $7);",
		user.ID, user.Name, user.Age, user.Gender, user.HeightCm, user.WeightKg, user.CreatedAt.UTC(),
	)
	return err
}

// GetByID retrieves a user by id, returning nil when absent.
func (d *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, name, age, gender, height_cm, weight_kg, created_at FROM users WHERE id=$1;", id)

	var u domain.User
	var weight sql.NullFloat64
	if err := row.Scan(&u.ID, &u.Name, &u.Age, &u.Gender, &u.HeightCm, &weight, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if weight.Valid {
		u.WeightKg = &weight.Float64
	}
	return &u, nil
}

// UpdateBody sets the stored height and weight for a user and returns the
// updated profile.
func (d *DB) UpdateBody(ctx context.Context, id string, heightCm, weightKg float64) (*domain.User, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE users SET height_cm=$2, weight_kg=$3 WHERE id=$1;", id, heightCm, weightKg)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return d.GetByID(ctx, id)
}
