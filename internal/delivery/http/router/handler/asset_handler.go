package handler

import (
	"net/http"
	"net/url"
	"strconv"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssetHandler streams product images, falling back to the default image.
type AssetHandler struct {
	store service.AssetStore
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(store service.AssetStore) *AssetHandler {
	return &AssetHandler{store: store}
}

// Image handles GET /assets/images/*.
func (h *AssetHandler) Image(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidImagePath, err.Error())
	}

	asset, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer asset.Body.Close()

	if asset.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(asset.Size, 10))
	}

	return c.Stream(http.StatusOK, asset.ContentType, asset.Body)
}
