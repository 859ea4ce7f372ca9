package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user matches the lookup
var ErrNotFound = errors.New("user not found")

// Repository defines the persistence boundary for admin-panel users
type Repository interface {
	// Create persists a new user
	Create(ctx context.Context, u *User) error

	// FindByID looks a user up by id
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail looks a user up by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateLastLogin records the moment of a successful login
	UpdateLastLogin(ctx context.Context, id string) error
}
