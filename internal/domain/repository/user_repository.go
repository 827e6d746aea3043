// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for customer persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email, including the password hash.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its id.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile changes name and email. Returns ErrUserNotFound when no row matched.
	UpdateProfile(ctx context.Context, user *entity.User) error
}
