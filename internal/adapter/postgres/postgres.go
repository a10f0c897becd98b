// Package postgres implements the repository ports on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"bmistation/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.MeasurementRepository = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id TEXT PRIMARY KEY, name TEXT NOT NULL, age INTEGER NOT NULL CHECK(age > 0), gender TEXT NOT NULL CHECK(gender IN ('male','female','other')), height_cm DOUBLE PRECISION NOT NULL, weight_kg DOUBLE PRECISION, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS measurements (id BIGSERIAL PRIMARY KEY, user_id TEXT NOT NULL REFERENCES users(id), height_cm DOUBLE PRECISION NOT NULL, weight_kg DOUBLE PRECISION NOT NULL, bmi DOUBLE PRECISION NOT NULL, category TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_measurements_user_created ON measurements(user_id, created_at DESC);",
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
