package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
)

// RequestLogging logs every handled request with its latency and status
func RequestLogging(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path = path + "?" + req.URL.RawQuery
			}

			userID := ""
			if id, ok := UserIDFromContext(c); ok {
				userID = strconv.FormatInt(id, 10)
			}
			requestID, _ := c.Get(HeaderRequestID).(string)

			log.LogHTTPRequest(
				req.Method,
				path,
				c.RealIP(),
				userID,
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
