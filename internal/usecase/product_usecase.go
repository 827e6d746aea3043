package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput holds parsed product fields. Nil optional numbers default to zero.
type CreateProductInput struct {
	Title              string
	Price              *decimal.Decimal
	CategoryID         *int64
	Image              string
	Description        *string
	Rating             *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	OriginalPrice      *decimal.Decimal
}

// ProductUsecase serves the catalog.
type ProductUsecase interface {
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	Get(ctx context.Context, productID int64) (*entity.Product, error)
	Create(ctx context.Context, input CreateProductInput) (int64, error)
	Search(ctx context.Context, query string) ([]*entity.Product, error)
}
