// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bmistation/internal/domain"

	"github.com/google/uuid"
)

// UserService handles registration and profile lookup.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Age      int
	Gender   string
	HeightCm float64
	WeightKg *float64
}

// Register validates the input and stores a new user with a fresh id.
// Name is not a key: two registrations with the same name yield distinct users.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be a positive integer", domain.ErrValidation)
	}
	switch in.Gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return nil, fmt.Errorf("%w: gender must be male, female or other", domain.ErrValidation)
	}
	if in.HeightCm < domain.MinHeightCm || in.HeightCm > domain.MaxHeightCm {
		return nil, fmt.Errorf("%w: heightCm must be within [%v, %v]", domain.ErrValidation, domain.MinHeightCm, domain.MaxHeightCm)
	}
	if in.WeightKg != nil && (*in.WeightKg < domain.MinWeightKg || *in.WeightKg > domain.MaxWeightKg) {
		return nil, fmt.Errorf("%w: weightKg must be within [%v, %v]", domain.ErrValidation, domain.MinWeightKg, domain.MaxWeightKg)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Age:       in.Age,
		Gender:    in.Gender,
		HeightCm:  in.HeightCm,
		WeightKg:  in.WeightKg,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return user, nil
}
