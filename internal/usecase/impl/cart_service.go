package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCartQuantity = 1

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) Get(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return items, nil
}

// Add increments the line in one upsert statement, creating it when absent.
func (srv *cartService) Add(ctx context.Context, input usecase.AddToCartInput) error {
	if input.UserID <= 0 || input.ProductID <= 0 {
		return errors.WithStack(domainerrors.ErrCartFieldsRequired)
	}

	quantity := defaultCartQuantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 1 {
		return errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "failed to load product for cart")
	}

	if err := srv.cartRepo.Upsert(ctx, input.UserID, input.ProductID, quantity); err != nil {
		srv.log(ctx).Warn("Failed to add cart item",
			slog.Int64("userID", input.UserID),
			slog.Int64("productID", input.ProductID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to add cart item")
	}

	return nil
}

func (srv *cartService) Update(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		return errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	err := srv.cartRepo.UpdateQuantity(ctx, userID, productID, quantity)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to update cart item")
	}

	return nil
}

func (srv *cartService) Remove(ctx context.Context, userID, productID int64) error {
	err := srv.cartRepo.Delete(ctx, userID, productID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) Clear(ctx context.Context, userID int64) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
