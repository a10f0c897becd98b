// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Valid profile ranges. Height and weight are expressed in centimeters and
// kilograms respectively.
const (
	MinHeightCm = 50.0
	MaxHeightCm = 250.0
	MinWeightKg = 10.0
	MaxWeightKg = 300.0
)

// Gender values accepted at registration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User is a registered person whose body metrics are tracked.
// WeightKg is nil until a weight is known (registration may omit it).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	HeightCm  float64   `json:"heightCm"`
	WeightKg  *float64  `json:"weightKg,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRepository is the port for user persistence. Lookups return (nil, nil)
// when no user exists; services translate that into ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateBody(ctx context.Context, id string, heightCm, weightKg float64) (*User, error)
}
