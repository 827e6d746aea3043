package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateStaffInput defines a new staff account. An empty Role means staff.
type CreateStaffInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateStaffInput replaces name, email and role. Password is optional.
type UpdateStaffInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

// StaffUsecase manages back-office accounts.
type StaffUsecase interface {
	// Verify resolves the acting staff member named by an identity marker.
	Verify(ctx context.Context, staffID int64) (*entity.Staff, error)

	List(ctx context.Context) ([]*entity.Staff, error)
	Get(ctx context.Context, staffID int64) (*entity.Staff, error)
	Create(ctx context.Context, input CreateStaffInput) (*entity.Staff, error)
	Update(ctx context.Context, staffID int64, input UpdateStaffInput) error

	// Delete refuses to remove the acting account.
	Delete(ctx context.Context, actingID, targetID int64) error
	Stats(ctx context.Context) (*entity.StaffStats, error)

	// EnsureBootstrapAdmin seeds the configured admin into an empty staff table.
	EnsureBootstrapAdmin(ctx context.Context) error
}
