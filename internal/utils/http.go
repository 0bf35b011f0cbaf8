package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponseHandler writes a success envelope
func SuccessResponseHandler(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMessageHandler writes a success envelope with a message and no data
func SuccessMessageHandler(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{
		Success: true,
		Message: message,
	})
}

// ErrorResponseHandler writes an error envelope
func ErrorResponseHandler(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequestResponse writes a 400 error envelope
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, message)
}

// InternalErrorResponse writes a 500 error envelope with a generic message
func InternalErrorResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, "internal server error")
}
