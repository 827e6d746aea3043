package handler

import (
	"net/http"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/presenter"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves per-user carts. Write routes take userId from the body.
type CartHandler struct {
	uc        usecase.CartUsecase
	identity  *middleware.IdentityMiddleware
	presenter *presenter.Presenter
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, identity *middleware.IdentityMiddleware, presenter *presenter.Presenter) *CartHandler {
	return &CartHandler{uc: uc, identity: identity, presenter: presenter}
}

type addToCartRequest struct {
	UserID    FlexibleID `json:"userId"`
	ProductID FlexibleID `json:"productId"`
	Quantity  *int       `json:"quantity"`
}

type updateCartItemRequest struct {
	UserID   FlexibleID `json:"userId"`
	Quantity *int       `json:"quantity"`
}

type removeCartItemRequest struct {
	UserID FlexibleID `json:"userId"`
}

// Get handles GET /api/cart behind RequireUser.
func (h *CartHandler) Get(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	items, err := h.uc.Get(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Cart(items))
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c echo.Context) error {
	var req addToCartRequest
	if err := bind(c, &req, domainerrors.ErrCartFieldsRequired); err != nil {
		return err
	}
	if req.UserID <= 0 || req.ProductID <= 0 {
		return errors.WithStack(domainerrors.ErrCartFieldsRequired)
	}
	if err := h.authorizeUser(c, req.UserID.Int64()); err != nil {
		return err
	}

	if err := h.uc.Add(c.Request().Context(), usecase.AddToCartInput{
		UserID:    req.UserID.Int64(),
		ProductID: req.ProductID.Int64(),
		Quantity:  req.Quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Item added to cart")
}

// Update handles PUT /api/cart-items/:productId.
func (h *CartHandler) Update(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := bind(c, &req, domainerrors.ErrCartUpdateFieldsRequired); err != nil {
		return err
	}
	if req.UserID <= 0 || req.Quantity == nil {
		return errors.WithStack(domainerrors.ErrCartUpdateFieldsRequired)
	}
	if err := h.authorizeUser(c, req.UserID.Int64()); err != nil {
		return err
	}

	if err := h.uc.Update(c.Request().Context(), req.UserID.Int64(), productID, *req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cart item updated")
}

// Remove handles DELETE /api/cart-items/:productId with userId in the body or query.
func (h *CartHandler) Remove(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req removeCartItemRequest
	if err := bind(c, &req, domainerrors.ErrUserMarkerRequired); err != nil {
		return err
	}
	userID := req.UserID.Int64()
	if userID <= 0 {
		var fromQuery FlexibleID
		if raw := strings.TrimSpace(c.QueryParam(middleware.QueryUserID)); raw != "" {
			if err := fromQuery.UnmarshalJSON([]byte(raw)); err != nil {
				return errors.WithStack(domainerrors.ErrUserMarkerRequired)
			}
		}
		userID = fromQuery.Int64()
	}
	if userID <= 0 {
		return errors.WithStack(domainerrors.ErrUserMarkerRequired)
	}
	if err := h.authorizeUser(c, userID); err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cart item removed")
}

// Clear handles DELETE /api/cart behind RequireUser.
func (h *CartHandler) Clear(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	if err := h.uc.Clear(c.Request().Context(), principal.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cart cleared")
}

func (h *CartHandler) authorizeUser(c echo.Context, userID int64) error {
	principal := entity.Principal{ID: userID, Kind: entity.PrincipalUser}
	if err := h.identity.Authorize(c, principal); err != nil {
		return err
	}
	deliverycontext.SetPrincipal(c, principal)

	return nil
}
