package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedEcho(limit float64) *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.LoginRateLimit = limit

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.POST("/api/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewLoginRateLimiter(cfg))

	return e
}

func loginFrom(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestNewLoginRateLimiter(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		e := newRateLimitedEcho(0)

		for range 5 {
			assert.Equal(t, http.StatusOK, loginFrom(e, "192.0.2.1:1000").Code)
		}
	})

	t.Run("limits per client ip", func(t *testing.T) {
		e := newRateLimitedEcho(1)

		assert.Equal(t, http.StatusOK, loginFrom(e, "192.0.2.1:1000").Code)

		denied := loginFrom(e, "192.0.2.1:1001")
		assert.Equal(t, http.StatusTooManyRequests, denied.Code)
		assert.JSONEq(t, `{"error":"Too many requests"}`, denied.Body.String())

		assert.Equal(t, http.StatusOK, loginFrom(e, "192.0.2.2:1000").Code)
	})
}
