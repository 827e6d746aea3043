package handler

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStaffEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockStaffUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockStaffUsecase(t)
	h := NewStaffHandler(uc, newTestPresenter())

	e := newTestEcho()
	g := e.Group("/api/staff", asPrincipal(testStaff))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/stats", h.Stats)
	g.GET("/:staffId", h.Get)
	g.PUT("/:staffId", h.Update)
	g.DELETE("/:staffId", h.Delete)

	return e, uc
}

func TestStaffHandler_List(t *testing.T) {
	e, uc := createTestStaffEcho(t)
	uc.EXPECT().List(mock.Anything).Return([]*entity.Staff{
		{ID: 1, Name: "Boss", Email: "boss@example.com", PasswordHash: "$2a$hash", Role: entity.RoleAdmin},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/staff", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")
}

func TestStaffHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, uc := createTestStaffEcho(t)
		created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(mock.Anything, usecase.CreateStaffInput{
			Name:     "Clerk",
			Email:    "clerk@example.com",
			Password: "secret",
		}).Return(&entity.Staff{ID: 4, Name: "Clerk", Email: "clerk@example.com", Role: entity.RoleStaff, CreatedAt: created}, nil)

		rec := doRequest(e, http.MethodPost, "/api/staff",
			`{"name":"Clerk","email":"clerk@example.com","password":"secret"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{
			"staffId": 4,
			"name": "Clerk",
			"email": "clerk@example.com",
			"role": "staff",
			"created_at": "2026-10-01T09:00:00Z",
			"message": "Staff created successfully"
		}`, rec.Body.String())
	})

	t.Run("missing password", func(t *testing.T) {
		e, _ := createTestStaffEcho(t)

		rec := doRequest(e, http.MethodPost, "/api/staff", `{"name":"Clerk","email":"clerk@example.com"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid role", func(t *testing.T) {
		e, uc := createTestStaffEcho(t)
		uc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidRole))

		rec := doRequest(e, http.MethodPost, "/api/staff",
			`{"name":"Clerk","email":"clerk@example.com","password":"secret","role":"owner"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid role. Must be one of [staff admin]"}`, rec.Body.String())
	})
}

func TestStaffHandler_Update(t *testing.T) {
	t.Run("role is required", func(t *testing.T) {
		e, _ := createTestStaffEcho(t)

		rec := doRequest(e, http.MethodPut, "/api/staff/4", `{"name":"Clerk","email":"clerk@example.com"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	})

	t.Run("updated", func(t *testing.T) {
		e, uc := createTestStaffEcho(t)
		uc.EXPECT().Update(mock.Anything, int64(4), usecase.UpdateStaffInput{
			Name:  "Clerk",
			Email: "clerk@example.com",
			Role:  "admin",
		}).Return(nil)

		rec := doRequest(e, http.MethodPut, "/api/staff/4", `{"name":"Clerk","email":"clerk@example.com","role":"admin"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Staff updated successfully"}`, rec.Body.String())
	})
}

func TestStaffHandler_Delete(t *testing.T) {
	t.Run("self delete", func(t *testing.T) {
		e, uc := createTestStaffEcho(t)
		uc.EXPECT().Delete(mock.Anything, testStaff.ID, testStaff.ID).Return(errors.WithStack(domainerrors.ErrSelfDelete))

		rec := doRequest(e, http.MethodDelete, "/api/staff/1", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot delete your own account"}`, rec.Body.String())
	})

	t.Run("deleted", func(t *testing.T) {
		e, uc := createTestStaffEcho(t)
		uc.EXPECT().Delete(mock.Anything, testStaff.ID, int64(4)).Return(nil)

		rec := doRequest(e, http.MethodDelete, "/api/staff/4", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestStaffHandler_Stats(t *testing.T) {
	e, uc := createTestStaffEcho(t)
	uc.EXPECT().Stats(mock.Anything).Return(&entity.StaffStats{Total: 3, Admins: 1, NonAdmin: 2, Recent: 1}, nil)

	rec := doRequest(e, http.MethodGet, "/api/staff/stats", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_staff":3,"admin_count":1,"staff_count":2,"recent_staff":1}`, rec.Body.String())
}
