package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/presenter"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaffHandler serves staff management. Every route runs behind RequireStaff.
type StaffHandler struct {
	uc        usecase.StaffUsecase
	presenter *presenter.Presenter
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(uc usecase.StaffUsecase, presenter *presenter.Presenter) *StaffHandler {
	return &StaffHandler{uc: uc, presenter: presenter}
}

type createStaffRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type updateStaffRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password"`
}

type createStaffResponse struct {
	presenter.StaffView
	Message string `json:"message"`
}

func (h *StaffHandler) List(c echo.Context) error {
	staff, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.StaffList(staff))
}

func (h *StaffHandler) Get(c echo.Context) error {
	staffID, err := pathID(c, "staffId")
	if err != nil {
		return err
	}

	staff, err := h.uc.Get(c.Request().Context(), staffID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.Staff(staff))
}

func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	staff, err := h.uc.Create(c.Request().Context(), usecase.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createStaffResponse{
		StaffView: h.presenter.Staff(staff),
		Message:   "Staff created successfully",
	})
}

func (h *StaffHandler) Update(c echo.Context) error {
	staffID, err := pathID(c, "staffId")
	if err != nil {
		return err
	}

	var req updateStaffRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	if err := h.uc.Update(c.Request().Context(), staffID, usecase.UpdateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Staff updated successfully")
}

func (h *StaffHandler) Delete(c echo.Context) error {
	targetID, err := pathID(c, "staffId")
	if err != nil {
		return err
	}

	acting, ok := deliverycontext.GetPrincipal(c)
	if !ok || !acting.IsStaff() {
		return errors.WithStack(domainerrors.ErrStaffMarkerRequired)
	}

	if err := h.uc.Delete(c.Request().Context(), acting.ID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Staff deleted successfully")
}

func (h *StaffHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.presenter.StaffStats(stats))
}
