package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var (
	maxRating   = decimal.NewFromInt(5)
	maxDiscount = decimal.NewFromInt(100)
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *productService) Create(ctx context.Context, input usecase.CreateProductInput) (int64, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Price == nil {
		return 0, errors.WithStack(domainerrors.ErrProductFieldsRequired)
	}

	product := &entity.Product{
		Title:       title,
		Price:       *input.Price,
		CategoryID:  input.CategoryID,
		Image:       entity.Image{Path: strings.TrimSpace(input.Image)},
		Description: input.Description,
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.DiscountPercentage != nil {
		product.DiscountPercentage = *input.DiscountPercentage
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}

	if err := validateProduct(product); err != nil {
		return 0, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return 0, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("title", product.Title))

	return product.ID, nil
}

func validateProduct(product *entity.Product) error {
	switch {
	case product.Price.IsNegative():
		return errors.WithStack(domainerrors.ErrInvalidPrice)
	case product.Rating.IsNegative() || product.Rating.GreaterThan(maxRating):
		return errors.WithStack(domainerrors.ErrInvalidRating)
	case product.DiscountPercentage.IsNegative() || product.DiscountPercentage.GreaterThan(maxDiscount):
		return errors.WithStack(domainerrors.ErrInvalidDiscount)
	case product.OriginalPrice.IsNegative():
		return errors.WithStack(domainerrors.ErrInvalidOriginalPrice)
	}

	return nil
}

func (srv *productService) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.WithStack(domainerrors.ErrSearchQueryRequired)
	}

	products, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}
