package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrStaffNotFound is returned when no staff member matches the lookup.
var ErrStaffNotFound = errors.New("staff not found")

// StaffRepository persists staff accounts.
type StaffRepository interface {
	// List returns all staff, newest first.
	List(ctx context.Context) ([]*entity.Staff, error)
	FindByID(ctx context.Context, id int64) (*entity.Staff, error)
	FindByEmail(ctx context.Context, email string) (*entity.Staff, error)

	// EmailTaken reports whether another staff member (other than excludeID) uses email.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)

	Create(ctx context.Context, staff *entity.Staff) error

	// Update writes name, email, role and, when non-empty, the password hash.
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id int64) error

	// Stats aggregates counts in a single statement.
	Stats(ctx context.Context) (*entity.StaffStats, error)
}
