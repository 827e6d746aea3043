package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddToCartInput adds Quantity (default 1) of a product to the user's cart.
type AddToCartInput struct {
	UserID    int64
	ProductID int64
	Quantity  *int
}

// CartUsecase manages per-user carts.
type CartUsecase interface {
	Get(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	Add(ctx context.Context, input AddToCartInput) error
	Update(ctx context.Context, userID, productID int64, quantity int) error
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}
