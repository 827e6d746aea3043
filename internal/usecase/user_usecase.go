package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// UserUsecase manages customer profiles.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) error
}
