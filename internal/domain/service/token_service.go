package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Kind entity.PrincipalKind `json:"kind"`
	Role entity.Role          `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens for both principal kinds.
type TokenService interface {
	// GenerateToken signs a token for the principal.
	GenerateToken(principal entity.Principal) (string, error)

	// ValidateToken verifies signature and expiry and returns the principal it was issued to.
	ValidateToken(tokenString string) (*entity.Principal, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
