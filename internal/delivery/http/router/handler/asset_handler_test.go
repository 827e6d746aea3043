package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAssetEcho(t *testing.T) (*echo.Echo, *mockSvc.MockAssetStore) {
	t.Helper()

	store := mockSvc.NewMockAssetStore(t)
	h := NewAssetHandler(store)

	e := newTestEcho()
	e.GET("/assets/images/*", h.Image)

	return e, store
}

func TestAssetHandler_Image(t *testing.T) {
	t.Run("streams image", func(t *testing.T) {
		e, store := createTestAssetEcho(t)
		store.EXPECT().Open(mock.Anything, "red shoe.png").Return(&service.Asset{
			Name:        "red shoe.png",
			ContentType: "image/png",
			Size:        8,
			Body:        io.NopCloser(strings.NewReader("pngbytes")),
		}, nil)

		rec := doRequest(e, http.MethodGet, "/assets/images/red%20shoe.png", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "8", rec.Header().Get(echo.HeaderContentLength))
		assert.Equal(t, "pngbytes", rec.Body.String())
	})

	t.Run("missing image and default", func(t *testing.T) {
		e, store := createTestAssetEcho(t)
		store.EXPECT().Open(mock.Anything, "gone.png").Return(nil, errors.WithStack(domainerrors.ErrImageNotFound))

		rec := doRequest(e, http.MethodGet, "/assets/images/gone.png", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Image file not found"}`, rec.Body.String())
	})

	t.Run("path traversal", func(t *testing.T) {
		e, store := createTestAssetEcho(t)
		store.EXPECT().Open(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidImagePath))

		rec := doRequest(e, http.MethodGet, "/assets/images/..%2Fsecret.txt", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
