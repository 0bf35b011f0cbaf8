package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is the request correlation header
const HeaderRequestID = "X-Request-ID"

// RequestID ensures every request carries a correlation id, generating one
// when the caller did not send it
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(HeaderRequestID, requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)

			return next(c)
		}
	}
}
