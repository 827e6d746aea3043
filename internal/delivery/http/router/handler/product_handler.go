package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/http/presenter"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	uc        usecase.ProductUsecase
	presenter *presenter.Presenter
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, presenter *presenter.Presenter) *ProductHandler {
	return &ProductHandler{uc: uc, presenter: presenter}
}

// createProductRequest keeps numbers raw so each malformed field gets its own message.
type createProductRequest struct {
	Title              string          `json:"title"`
	Price              json.RawMessage `json:"price"`
	CategoryID         json.RawMessage `json:"categoryId"`
	Image              string          `json:"image"`
	Description        *string         `json:"description"`
	Rating             json.RawMessage `json:"rating"`
	DiscountPercentage json.RawMessage `json:"discount_percentage"`
	OriginalPrice      json.RawMessage `json:"original_price"`
}

type createProductResponse struct {
	ProductID int64  `json:"productId"`
	Message   string `json:"message"`
}

// List handles GET /api/products with an optional categoryId filter.
func (h *ProductHandler) List(c echo.Context) error {
	var filter entity.ProductFilter
	if raw := strings.TrimSpace(c.QueryParam("categoryId")); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.WithStack(domainerrors.ErrInvalidCategory)
		}
		filter.CategoryID = &categoryID
	}

	products, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Products(products))
}

func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	product, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Product(product))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bind(c, &req, domainerrors.ErrProductFieldsRequired); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	productID, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createProductResponse{
		ProductID: productID,
		Message:   "Product added successfully",
	})
}

func (req *createProductRequest) toInput() (usecase.CreateProductInput, error) {
	input := usecase.CreateProductInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}

	var err error
	if input.Price, err = parseDecimal(req.Price, domainerrors.ErrInvalidPrice); err != nil {
		return input, err
	}
	if input.Rating, err = parseDecimal(req.Rating, domainerrors.ErrInvalidRating); err != nil {
		return input, err
	}
	if input.DiscountPercentage, err = parseDecimal(req.DiscountPercentage, domainerrors.ErrInvalidDiscount); err != nil {
		return input, err
	}
	if input.OriginalPrice, err = parseDecimal(req.OriginalPrice, domainerrors.ErrInvalidOriginalPrice); err != nil {
		return input, err
	}

	if !isNullJSON(req.CategoryID) {
		var categoryID FlexibleID
		if err := json.Unmarshal(req.CategoryID, &categoryID); err != nil {
			return input, errors.WithStack(domainerrors.ErrInvalidCategory)
		}
		id := categoryID.Int64()
		input.CategoryID = &id
	}

	return input, nil
}

// Search handles GET /api/search?q=.
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Products(products))
}

// parseDecimal accepts a JSON number or numeric string. Absent and null yield nil.
func parseDecimal(raw json.RawMessage, invalid error) (*decimal.Decimal, error) {
	if isNullJSON(raw) {
		return nil, nil
	}

	var value decimal.Decimal
	if err := value.UnmarshalJSON(bytes.TrimSpace(raw)); err != nil {
		return nil, errors.Wrap(invalid, err.Error())
	}

	return &value, nil
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
