// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new customer.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries credentials for both customer and staff login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the customer id and a signed token.
type LoginOutput struct {
	UserID int64
	Token  string
}

// StaffLoginOutput returns the staff member and a signed token.
type StaffLoginOutput struct {
	Staff *entity.Staff
	Token string
}

// AuthUsecase defines sign-up and login for customers and staff.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (int64, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	StaffLogin(ctx context.Context, input LoginInput) (*StaffLoginOutput, error)
}
