package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)

	return NewProductService(ProductServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()}), productRepo
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)

	return &d
}

func TestProductService_Get(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Product{ID: 1, Title: "Mug"}, nil)
	productRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrProductNotFound)

	product, err := service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mug", product.Title)

	_, err = service.Get(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_List_PassesFilter(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	category := int64(3)
	filter := entity.ProductFilter{CategoryID: &category}
	productRepo.EXPECT().List(ctx, filter).Return([]*entity.Product{{ID: 1}}, nil)

	products, err := service.List(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_Create(t *testing.T) {
	t.Run("defaults optional numbers to zero", func(t *testing.T) {
		service, productRepo := createTestProductService(t)
		ctx := context.Background()

		productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(ctx context.Context, product *entity.Product) {
				assert.Equal(t, "Mug", product.Title)
				assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
				assert.True(t, product.Rating.IsZero())
				assert.True(t, product.DiscountPercentage.IsZero())
				assert.True(t, product.OriginalPrice.IsZero())
				assert.Equal(t, "mug.png", product.Image.Path)
				product.ID = 11
			}).
			Return(nil)

		productID, err := service.Create(ctx, usecase.CreateProductInput{
			Title: "Mug",
			Price: decimalPtr("12.50"),
			Image: "mug.png",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(11), productID)
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		service, productRepo := createTestProductService(t)
		ctx := context.Background()

		productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		_, err := service.Create(ctx, usecase.CreateProductInput{Title: "Sticker", Price: decimalPtr("0")})
		require.NoError(t, err)
	})

	tests := []struct {
		name  string
		input usecase.CreateProductInput
		want  error
	}{
		{"missing title", usecase.CreateProductInput{Price: decimalPtr("1")}, domainerrors.ErrProductFieldsRequired},
		{"missing price", usecase.CreateProductInput{Title: "Mug"}, domainerrors.ErrProductFieldsRequired},
		{"negative price", usecase.CreateProductInput{Title: "Mug", Price: decimalPtr("-1")}, domainerrors.ErrInvalidPrice},
		{"rating above five", usecase.CreateProductInput{Title: "Mug", Price: decimalPtr("1"), Rating: decimalPtr("5.1")}, domainerrors.ErrInvalidRating},
		{"negative discount", usecase.CreateProductInput{Title: "Mug", Price: decimalPtr("1"), DiscountPercentage: decimalPtr("-0.5")}, domainerrors.ErrInvalidDiscount},
		{"discount above hundred", usecase.CreateProductInput{Title: "Mug", Price: decimalPtr("1"), DiscountPercentage: decimalPtr("101")}, domainerrors.ErrInvalidDiscount},
		{"negative original price", usecase.CreateProductInput{Title: "Mug", Price: decimalPtr("1"), OriginalPrice: decimalPtr("-3")}, domainerrors.ErrInvalidOriginalPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestProductService(t)

			_, err := service.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProductService_Search(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	_, err := service.Search(ctx, "   ")
	require.ErrorIs(t, err, domainerrors.ErrSearchQueryRequired)

	productRepo.EXPECT().Search(ctx, "mug").Return([]*entity.Product{}, nil)

	products, err := service.Search(ctx, " mug ")
	require.NoError(t, err)
	assert.Empty(t, products)
}
