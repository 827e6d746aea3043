package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockProductUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(uc, newTestPresenter())

	e := newTestEcho()
	e.GET("/api/products", h.List)
	e.GET("/api/products/:productId", h.Get)
	e.POST("/api/products", h.Create)
	e.GET("/api/search", h.Search)

	return e, uc
}

func TestProductHandler_List(t *testing.T) {
	t.Run("category filter", func(t *testing.T) {
		e, uc := createTestProductEcho(t)
		uc.EXPECT().List(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.CategoryID != nil && *f.CategoryID == 2
		})).Return([]*entity.Product{{
			ID:    1,
			Title: "Sneaker",
			Price: decimal.RequireFromString("49.5"),
			Image: entity.Image{Path: "uploads/sneaker.png"},
		}}, nil)

		rec := doRequest(e, http.MethodGet, "/api/products?categoryId=2", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"image":"/assets/images/sneaker.png"`)
		assert.Contains(t, rec.Body.String(), `"description":"No description available."`)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		e, uc := createTestProductEcho(t)
		uc.EXPECT().List(mock.Anything, entity.ProductFilter{}).Return(nil, nil)

		rec := doRequest(e, http.MethodGet, "/api/products", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("bad category", func(t *testing.T) {
		e, _ := createTestProductEcho(t)

		rec := doRequest(e, http.MethodGet, "/api/products?categoryId=shoes", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		e, uc := createTestProductEcho(t)
		uc.EXPECT().Get(mock.Anything, int64(99)).Return(nil, errors.WithStack(domainerrors.ErrProductNotFound))

		rec := doRequest(e, http.MethodGet, "/api/products/99", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		e, _ := createTestProductEcho(t)

		rec := doRequest(e, http.MethodGet, "/api/products/abc", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("created with string numbers", func(t *testing.T) {
		e, uc := createTestProductEcho(t)
		uc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
			return in.Title == "Sneaker" &&
				in.Price != nil && in.Price.Equal(decimal.RequireFromString("49.99")) &&
				in.CategoryID != nil && *in.CategoryID == 2 &&
				in.Rating != nil && in.Rating.Equal(decimal.NewFromInt(4)) &&
				in.DiscountPercentage == nil
		})).Return(int64(30), nil)

		rec := doRequest(e, http.MethodPost, "/api/products",
			`{"title":"Sneaker","price":"49.99","categoryId":"2","rating":4}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"productId":30,"message":"Product added successfully"}`, rec.Body.String())
	})

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad price", `{"title":"Sneaker","price":"cheap"}`, "Price must be a valid positive number"},
		{"bad rating", `{"title":"Sneaker","price":1,"rating":"great"}`, "Rating must be a number between 0 and 5"},
		{"bad discount", `{"title":"Sneaker","price":1,"discount_percentage":"lots"}`, "Discount percentage must be a number between 0 and 100"},
		{"bad original price", `{"title":"Sneaker","price":1,"original_price":"more"}`, "Original price must be a valid positive number"},
		{"bad category", `{"title":"Sneaker","price":1,"categoryId":"shoes"}`, "Invalid categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestProductEcho(t)

			rec := doRequest(e, http.MethodPost, "/api/products", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decodeBody(t, rec)["error"])
		})
	}
}

func TestProductHandler_Search(t *testing.T) {
	e, uc := createTestProductEcho(t)
	uc.EXPECT().Search(mock.Anything, "").Return(nil, errors.WithStack(domainerrors.ErrSearchQueryRequired))

	rec := doRequest(e, http.MethodGet, "/api/search", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Search query is required"}`, rec.Body.String())
}
