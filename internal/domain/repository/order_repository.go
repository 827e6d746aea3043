package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// Create inserts the order header then its items, assigning ids to both.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns the user's orders newest first, with items and their products.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// FindByIDForUser restricts the lookup to orders owned by userID.
	FindByIDForUser(ctx context.Context, orderID, userID int64) (*entity.Order, error)

	// FindByID loads any order with items and customer.
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)

	// ListAll returns every order newest first with its customer and without items.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus is a single conditional update. Returns ErrOrderNotFound when no row matched.
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error
}
