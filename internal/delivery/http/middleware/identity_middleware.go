package middleware

import (
	"strconv"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	HeaderUserID  = "X-User-ID"
	HeaderStaffID = "X-Staff-ID"

	QueryUserID  = "userId"
	QueryStaffID = "staffId"

	bearerPrefix = "Bearer "
)

// IdentityMiddleware resolves the acting principal from X-User-ID / X-Staff-ID markers.
// A bearer token, when sent, must be valid and name the same principal as the marker.
type IdentityMiddleware struct {
	staffUC  usecase.StaffUsecase
	tokenSvc service.TokenService
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(staffUC usecase.StaffUsecase, tokenSvc service.TokenService) *IdentityMiddleware {
	return &IdentityMiddleware{staffUC: staffUC, tokenSvc: tokenSvc}
}

// RequireStaff admits requests whose staff marker names an existing staff member.
func (m *IdentityMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		staffID, ok := markerID(c, HeaderStaffID, QueryStaffID)
		if !ok {
			return errors.WithStack(domainerrors.ErrStaffMarkerRequired)
		}

		principal, err := m.resolveStaff(c, staffID)
		if err != nil {
			return err
		}
		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireUser admits requests carrying a user marker.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := markerID(c, HeaderUserID, QueryUserID)
		if !ok {
			return errors.WithStack(domainerrors.ErrUserMarkerRequired)
		}

		principal := entity.Principal{ID: userID, Kind: entity.PrincipalUser}
		if err := m.Authorize(c, principal); err != nil {
			return err
		}
		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireUserOrStaff prefers the staff marker when both are present.
func (m *IdentityMiddleware) RequireUserOrStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var principal entity.Principal
		if staffID, ok := markerID(c, HeaderStaffID, QueryStaffID); ok {
			resolved, err := m.resolveStaff(c, staffID)
			if err != nil {
				return err
			}
			principal = resolved
		} else if userID, ok := markerID(c, HeaderUserID, QueryUserID); ok {
			principal = entity.Principal{ID: userID, Kind: entity.PrincipalUser}
			if err := m.Authorize(c, principal); err != nil {
				return err
			}
		} else {
			return errors.WithStack(domainerrors.ErrPrincipalRequired)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// Authorize checks an optional bearer token against principal. Without a token the marker stands alone.
func (m *IdentityMiddleware) Authorize(c echo.Context, principal entity.Principal) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil
	}

	tokenString, found := strings.CutPrefix(header, bearerPrefix)
	if !found || strings.TrimSpace(tokenString) == "" {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	claimed, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if claimed.ID != principal.ID || claimed.Kind != principal.Kind {
		return errors.Wrap(domainerrors.ErrInvalidToken, "token does not match identity marker")
	}

	return nil
}

func (m *IdentityMiddleware) resolveStaff(c echo.Context, staffID int64) (entity.Principal, error) {
	principal := entity.Principal{ID: staffID, Kind: entity.PrincipalStaff}
	if err := m.Authorize(c, principal); err != nil {
		return entity.Principal{}, err
	}

	staff, err := m.staffUC.Verify(c.Request().Context(), staffID)
	if err != nil {
		return entity.Principal{}, errors.WithStack(err)
	}
	principal.Role = staff.Role

	return principal, nil
}

// markerID reads the header first, then the query parameter. Non-positive or non-numeric values count as absent.
func markerID(c echo.Context, header, query string) (int64, bool) {
	raw := strings.TrimSpace(c.Request().Header.Get(header))
	if raw == "" {
		raw = strings.TrimSpace(c.QueryParam(query))
	}
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
