package handler

import (
	"encoding/json"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/presenter"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// HeaderIdempotencyKey optionally deduplicates checkout submissions.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderHandler serves checkout, order history and fulfilment status.
type OrderHandler struct {
	uc        usecase.OrderUsecase
	identity  *middleware.IdentityMiddleware
	presenter *presenter.Presenter
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, identity *middleware.IdentityMiddleware, presenter *presenter.Presenter) *OrderHandler {
	return &OrderHandler{uc: uc, identity: identity, presenter: presenter}
}

type checkoutItemRequest struct {
	ProductID FlexibleID      `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type checkoutRequest struct {
	UserID   FlexibleID            `json:"userId"`
	Items    []checkoutItemRequest `json:"items"`
	Total    *decimal.Decimal      `json:"total"`
	Shipping json.RawMessage       `json:"shipping"`
	Payment  json.RawMessage       `json:"payment"`
}

type checkoutResponse struct {
	OrderID int64  `json:"orderId"`
	Message string `json:"message"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Checkout handles POST /api/checkout. The submitted total is stored without recomputation.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	shipping, hasShipping := compactJSON(req.Shipping)
	payment, hasPayment := compactJSON(req.Payment)
	if req.UserID <= 0 || len(req.Items) == 0 || req.Total == nil || req.Total.IsZero() || !hasShipping || !hasPayment {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}

	principal := entity.Principal{ID: req.UserID.Int64(), Kind: entity.PrincipalUser}
	if err := h.identity.Authorize(c, principal); err != nil {
		return err
	}
	deliverycontext.SetPrincipal(c, principal)

	items := make([]usecase.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CheckoutItem{
			ProductID: item.ProductID.Int64(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	orderID, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		UserID:         principal.ID,
		Items:          items,
		Total:          *req.Total,
		Shipping:       shipping,
		Payment:        payment,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkoutResponse{
		OrderID: orderID,
		Message: "Order placed successfully",
	})
}

// ListForUser handles GET /api/orders behind RequireUser.
func (h *OrderHandler) ListForUser(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	orders, err := h.uc.ListForUser(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Orders(orders))
}

// Get handles GET /api/orders/:orderId behind RequireUserOrStaff.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	principal, _ := deliverycontext.GetPrincipal(c)

	order, err := h.uc.Get(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Order(order, principal.IsStaff()))
}

// ListAll handles GET /api/orders/all behind RequireStaff.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Orders(orders))
}

// UpdateStatus handles PUT /api/orders/:orderId behind RequireStaff.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := bind(c, &req, domainerrors.ErrStatusRequired); err != nil {
		return err
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Order status updated successfully")
}

// ReceiptQRCode handles GET /api/orders/:orderId/qrcode behind RequireUserOrStaff.
func (h *OrderHandler) ReceiptQRCode(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	principal, _ := deliverycontext.GetPrincipal(c)

	png, err := h.uc.ReceiptQRCode(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
