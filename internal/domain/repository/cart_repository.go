package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartItemNotFound is returned when a (user, product) pair has no cart row.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists cart lines keyed by (userID, productID).
type CartRepository interface {
	// ListByUser returns cart lines joined with their product.
	ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error)

	// Upsert inserts the line or adds quantity to the existing one in a single statement.
	Upsert(ctx context.Context, userID, productID int64, quantity int) error

	// UpdateQuantity sets quantity. Returns ErrCartItemNotFound when no row matched.
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error

	// Delete removes one line. Returns ErrCartItemNotFound when no row matched.
	Delete(ctx context.Context, userID, productID int64) error

	// Clear removes every line of the user.
	Clear(ctx context.Context, userID int64) error
}
