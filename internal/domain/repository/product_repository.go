package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists the catalog.
type ProductRepository interface {
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error

	// Search matches query case-insensitively against title or description.
	Search(ctx context.Context, query string) ([]*entity.Product, error)
}
