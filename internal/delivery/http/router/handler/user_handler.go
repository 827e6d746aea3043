package handler

import (
	"net/http"

	"storefront/internal/delivery/http/presenter"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves customer profiles.
type UserHandler struct {
	uc        usecase.UserUsecase
	presenter *presenter.Presenter
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, presenter *presenter.Presenter) *UserHandler {
	return &UserHandler{uc: uc, presenter: presenter}
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// GetProfile handles GET /api/users/:userId.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.User(user))
}

// UpdateProfile handles PUT /api/users/:userId.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User updated successfully")
}
