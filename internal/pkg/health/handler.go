package health

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/dostavka-go/user-service/internal/pkg/database"
)

// Handler serves liveness and readiness probes
type Handler struct {
	serviceName string
	version     string
	db          *sqlx.DB
	redis       *database.RedisClient
}

// NewHandler creates a health handler. The redis client may be nil when the
// cache is disabled.
func NewHandler(serviceName, version string, db *sqlx.DB, redis *database.RedisClient) *Handler {
	return &Handler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		redis:       redis,
	}
}

// RegisterRoutes mounts the probe endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.GET("/health", h.Health)
}

// Ping is the liveness probe
func (h *Handler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "pong",
		"service": h.serviceName,
	})
}

// Health is the readiness probe: it checks every backing dependency and
// reports 503 when any is down
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "down: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "up"
	}

	if h.redis != nil {
		if err := h.redis.Client.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down: " + err.Error()
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]interface{}{
		"status":    status,
		"service":   h.serviceName,
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
