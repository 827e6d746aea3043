package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{service: service, cartRepo: cartRepo, productRepo: productRepo}
}

func TestCartService_Add(t *testing.T) {
	t.Run("defaults quantity to one", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Product{ID: 2}, nil)
		fx.cartRepo.EXPECT().Upsert(ctx, int64(1), int64(2), 1).Return(nil)

		require.NoError(t, fx.service.Add(ctx, usecase.AddToCartInput{UserID: 1, ProductID: 2}))
	})

	t.Run("passes explicit quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Product{ID: 2}, nil)
		fx.cartRepo.EXPECT().Upsert(ctx, int64(1), int64(2), 3).Return(nil)

		require.NoError(t, fx.service.Add(ctx, usecase.AddToCartInput{UserID: 1, ProductID: 2, Quantity: intPtr(3)}))
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

		err := fx.service.Add(ctx, usecase.AddToCartInput{UserID: 1, ProductID: 99})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		fx := createTestCartService(t)

		err := fx.service.Add(context.Background(), usecase.AddToCartInput{UserID: 1, ProductID: 2, Quantity: intPtr(0)})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("missing ids", func(t *testing.T) {
		fx := createTestCartService(t)

		err := fx.service.Add(context.Background(), usecase.AddToCartInput{ProductID: 2})
		assert.ErrorIs(t, err, domainerrors.ErrCartFieldsRequired)
	})
}

func TestCartService_Update(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.ErrorIs(t, fx.service.Update(ctx, 1, 2, 0), domainerrors.ErrInvalidQuantity)

	fx.cartRepo.EXPECT().UpdateQuantity(ctx, int64(1), int64(2), 4).Return(nil)
	require.NoError(t, fx.service.Update(ctx, 1, 2, 4))

	fx.cartRepo.EXPECT().UpdateQuantity(ctx, int64(1), int64(3), 4).Return(repository.ErrCartItemNotFound)
	assert.ErrorIs(t, fx.service.Update(ctx, 1, 3, 4), domainerrors.ErrCartItemNotFound)
}

func TestCartService_Remove(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Delete(ctx, int64(1), int64(2)).Return(nil)
	fx.cartRepo.EXPECT().Delete(ctx, int64(1), int64(3)).Return(repository.ErrCartItemNotFound)

	require.NoError(t, fx.service.Remove(ctx, 1, 2))
	assert.ErrorIs(t, fx.service.Remove(ctx, 1, 3), domainerrors.ErrCartItemNotFound)
}

func TestCartService_GetAndClear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().ListByUser(ctx, int64(1)).Return([]*entity.CartItem{{ProductID: 2, Quantity: 5}}, nil)
	fx.cartRepo.EXPECT().Clear(ctx, int64(1)).Return(nil)

	items, err := fx.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	require.NoError(t, fx.service.Clear(ctx, 1))
}
