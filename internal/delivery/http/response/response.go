// Package response writes the JSON bodies shared by every handler.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the only error shape the API returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody acknowledges a write that returns no record.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as is.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Error writes {"error": message}, falling back to the status text.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
