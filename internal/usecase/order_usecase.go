package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CheckoutItem is one submitted order line. Price is taken as submitted.
type CheckoutItem struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// CheckoutInput is a submitted cart. Total is not recomputed server-side.
type CheckoutInput struct {
	UserID   int64
	Items    []CheckoutItem
	Total    decimal.Decimal
	Shipping string // compact JSON
	Payment  string // compact JSON

	// IdempotencyKey is optional. A repeated key for the same user is rejected.
	IdempotencyKey string
}

// OrderUsecase handles checkout, order history and fulfilment status.
type OrderUsecase interface {
	Checkout(ctx context.Context, input CheckoutInput) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// Get returns the order for principal. Staff see any order with its customer,
	// customers only their own.
	Get(ctx context.Context, principal entity.Principal, orderID int64) (*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error

	// ReceiptQRCode renders a PNG for an order the principal may read.
	ReceiptQRCode(ctx context.Context, principal entity.Principal, orderID int64) ([]byte, error)
}
