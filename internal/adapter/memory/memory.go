// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bmistation/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu           sync.Mutex
	users        map[string]*domain.User
	measurements []domain.Measurement

	measurementIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users: make(map[string]*domain.User),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.MeasurementRepository = (*DB)(nil)

// --- UserRepository ---

// Create stores a new user.
func (db *DB) Create(ctx context.Context, user *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[user.ID]; ok {
		return fmt.Errorf("user %s already exists", user.ID)
	}
	u := cloneUser(user)
	db.users[user.ID] = &u
	return nil
}

// GetByID retrieves a user by id, returning nil when absent.
func (db *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[id]
	if !ok {
		return nil, nil
	}
	ret := cloneUser(u)
	return &ret, nil
}

// UpdateBody sets the stored height and weight for a user and returns the
// updated profile.
func (db *DB) UpdateBody(ctx context.Context, id string, heightCm, weightKg float64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	u.HeightCm = heightCm
	w := weightKg
	u.WeightKg = &w
	ret := cloneUser(u)
	return &ret, nil
}

// --- MeasurementRepository ---

// Add appends a measurement and returns its assigned id.
func (db *DB) Add(ctx context.Context, m *domain.Measurement) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.measurementIDCounter++
	entry := *m
	entry.ID = db.measurementIDCounter
	db.measurements = append(db.measurements, entry)
	return entry.ID, nil
}

// Latest returns the newest measurement for a user, nil when none exists.
// Equal timestamps are broken by insertion order.
func (db *DB) Latest(ctx context.Context, userID string) (*domain.Measurement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var latest *domain.Measurement
	for i := range db.measurements {
		m := &db.measurements[i]
		if m.UserID != userID {
			continue
		}
		if latest == nil || !m.CreatedAt.Before(latest.CreatedAt) {
			latest = m
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	return &ret, nil
}

// ListRecent returns up to limit measurements for a user, newest first.
func (db *DB) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Measurement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.Measurement
	for _, m := range db.measurements {
		if m.UserID == userID {
			result = append(result, m)
		}
	}

	// Newest first; ids are monotonic so they break timestamp ties by
	// insertion order.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func cloneUser(u *domain.User) domain.User {
	ret := *u
	if u.WeightKg != nil {
		w := *u.WeightKg
		ret.WeightKg = &w
	}
	return ret
}
