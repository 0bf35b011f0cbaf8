package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dostavka-go/user-service/internal/pkg/jwt"
	"github.com/dostavka-go/user-service/internal/utils"
)

// Context keys set by the auth middleware
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

// JWTMiddleware validates bearer tokens and stores the claims on the request
// context
type JWTMiddleware struct {
	tokens *jwt.Service
}

// NewJWTMiddleware creates the auth middleware
func NewJWTMiddleware(tokens *jwt.Service) *JWTMiddleware {
	return &JWTMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token
func (m *JWTMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "invalid authorization header format")
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, err.Error())
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Subject)
		c.Set(ContextUserRole, claims.Role)

		return next(c)
	}
}

// RequireRole rejects authenticated requests whose role is not in the allowed
// set
func (m *JWTMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ErrorResponseHandler(c, http.StatusForbidden, "insufficient permissions")
		}
	}
}

// UserIDFromContext returns the authenticated user's id, or false if the
// request was not authenticated
func UserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextUserID).(int64)
	return id, ok
}
