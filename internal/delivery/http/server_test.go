package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/presenter"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	deliverymiddleware "storefront/internal/delivery/middleware"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	e       *echo.Echo
	staffUC *mockUsecase.MockStaffUsecase
	orderUC *mockUsecase.MockOrderUsecase
}

func createTestServer(t *testing.T) *serverFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := presenter.NewWithBase("/assets/images", "default.png")

	staffUC := mockUsecase.NewMockStaffUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	identity := middleware.NewIdentityMiddleware(staffUC, mockSvc.NewMockTokenService(t))

	e := newEcho(HTTPParams{
		Config:              cfg,
		Logger:              logger,
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger),
		RequestIDMiddleware: deliverymiddleware.NewRequestIDMiddleware(logger),
		DebugLogger:         deliverymiddleware.NewDebugLogger(logger, cfg),
		RouterParams: router.RouterParams{
			AuthHandler:        handler.NewAuthHandler(mockUsecase.NewMockAuthUsecase(t)),
			UserHandler:        handler.NewUserHandler(mockUsecase.NewMockUserUsecase(t), p),
			StaffHandler:       handler.NewStaffHandler(staffUC, p),
			ProductHandler:     handler.NewProductHandler(mockUsecase.NewMockProductUsecase(t), p),
			CartHandler:        handler.NewCartHandler(mockUsecase.NewMockCartUsecase(t), identity, p),
			OrderHandler:       handler.NewOrderHandler(orderUC, identity, p),
			AssetHandler:       handler.NewAssetHandler(mockSvc.NewMockAssetStore(t)),
			IdentityMiddleware: identity,
			LoginRateLimiter:   middleware.NewLoginRateLimiter(cfg),
		},
	})

	return &serverFixture{e: e, staffUC: staffUC, orderUC: orderUC}
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_Routes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		fx := createTestServer(t)

		rec := serve(fx.e, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("unknown route", func(t *testing.T) {
		fx := createTestServer(t)

		rec := serve(fx.e, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
	})

	t.Run("staff route without marker", func(t *testing.T) {
		fx := createTestServer(t)

		rec := serve(fx.e, httptest.NewRequest(http.MethodGet, "/api/staff", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Staff ID required"}`, rec.Body.String())
	})

	t.Run("unknown staff path is not guarded", func(t *testing.T) {
		fx := createTestServer(t)

		rec := serve(fx.e, httptest.NewRequest(http.MethodGet, "/api/staff/unknown/deep", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
	})

	t.Run("orders/all is not an order id", func(t *testing.T) {
		fx := createTestServer(t)
		fx.staffUC.EXPECT().Verify(mock.Anything, int64(1)).Return(&entity.Staff{ID: 1, Role: entity.RoleAdmin}, nil)
		fx.orderUC.EXPECT().ListAll(mock.Anything).Return([]*entity.Order{}, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/all", nil)
		req.Header.Set(middleware.HeaderStaffID, "1")

		rec := serve(fx.e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("cors preflight allows identity headers", func(t *testing.T) {
		fx := createTestServer(t)
		req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
		req.Header.Set(echo.HeaderOrigin, "http://shop.example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		req.Header.Set(echo.HeaderAccessControlRequestHeaders, middleware.HeaderUserID)

		rec := serve(fx.e, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), middleware.HeaderUserID)
	})

	t.Run("body limit", func(t *testing.T) {
		fx := createTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(strings.Repeat("x", 4096)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := serve(fx.e, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
