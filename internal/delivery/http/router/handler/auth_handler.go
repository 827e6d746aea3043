package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves sign-up and login for customers and staff.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signUpResponse struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

type loginResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

type staffLoginResponse struct {
	StaffID int64  `json:"staffId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}

// SignUp handles POST /api/users.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	userID, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signUpResponse{UserID: userID, Message: "User created"})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{UserID: output.UserID, Token: output.Token})
}

// StaffLogin handles POST /api/staff/login.
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req, domainerrors.ErrMissingFields); err != nil {
		return err
	}

	output, err := h.uc.StaffLogin(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, staffLoginResponse{
		StaffID: output.Staff.ID,
		Name:    output.Staff.Name,
		Email:   output.Staff.Email,
		Role:    string(output.Staff.Role),
		Token:   output.Token,
	})
}
