package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error",
			method:   http.MethodGet,
			err:      errors.WithStack(domainerrors.ErrProductNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Product not found"}`,
		},
		{
			name:     "wrapped app error keeps user message",
			method:   http.MethodPost,
			err:      errors.Wrap(domainerrors.ErrInvalidInput, "unexpected EOF"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request body"}`,
		},
		{
			name:     "server app error echoes detail",
			method:   http.MethodGet,
			err:      errors.Wrap(domainerrors.ErrInternalError, "connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"connection refused: Internal server error"}`,
		},
		{
			name:     "unknown route",
			method:   http.MethodGet,
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Route not found"}`,
		},
		{
			name:     "echo http error",
			method:   http.MethodPost,
			err:      echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"error":"Request Entity Too Large"}`,
		},
		{
			name:     "plain error",
			method:   http.MethodGet,
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"boom"}`,
		},
		{
			name:     "head has no body",
			method:   http.MethodHead,
			err:      errors.WithStack(domainerrors.ErrProductNotFound),
			wantCode: http.StatusNotFound,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/anything", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())

				return
			}
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "partial")

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
