// Package handler contains the HTTP handlers for the application.
package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FlexibleID accepts 7, "7" or null. Browser clients keep ids in localStorage as strings.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*id = 0

		return nil
	}
	raw = strings.Trim(raw, `"`)

	parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid id %s", string(data))
	}
	*id = FlexibleID(parsed)

	return nil
}

func (id FlexibleID) Int64() int64 {
	return int64(id)
}

// bind decodes the body and runs validate tags. A failed tag check becomes onInvalid.
func bind(c echo.Context, dst any, onInvalid error) error {
	if err := c.Bind(dst); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}
	if err := c.Validate(dst); err != nil {
		return errors.Wrap(onInvalid, err.Error())
	}

	return nil
}

// pathID parses a numeric path parameter. Non-numeric ids do not match any route.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrRouteNotFound)
	}

	return id, nil
}

// compactJSON keeps a non-empty JSON value as compact text. null, "", {} and [] count as absent.
func compactJSON(raw json.RawMessage) (string, bool) {
	if isNullJSON(raw) {
		return "", false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", false
	}

	switch buf.String() {
	case `""`, "{}", "[]":
		return "", false
	}

	return buf.String(), true
}
