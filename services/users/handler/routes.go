package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dostavka-go/user-service/internal/pkg/middleware"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	httphandler "github.com/dostavka-go/user-service/services/users/handler/http"
)

// RegisterRoutes mounts the user service endpoints. Registration and login
// are public, everything else requires a bearer token.
func RegisterRoutes(e *echo.Echo, h *httphandler.UserHandler, auth *middleware.JWTMiddleware) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.Me, auth.Authenticate)

	usersGroup := e.Group("/users", auth.Authenticate)
	usersGroup.GET("/me/location", h.GetLocation)
	usersGroup.PUT("/me/location", h.UpdateLocation)
	usersGroup.DELETE("/me/location", h.DeleteLocation)
	usersGroup.GET("/me/location/status", h.LocationStatus)
	usersGroup.PUT("/me/address", h.UpdateAddress)
	usersGroup.POST("/me/nearby-stores", h.NearbyStores)
	usersGroup.GET("/me/nearby-stores", h.NearbyStoresQuery)
	usersGroup.GET("/me/distance-to-store/:id", h.DistanceToStore)
	usersGroup.GET("/location-stats", h.LocationStats, auth.RequireRole(models.RoleAdmin))
}
