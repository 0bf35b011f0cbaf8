package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/middleware"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/internal/utils"
	"github.com/dostavka-go/user-service/services/users"
)

// UserHandler exposes the user service over HTTP
type UserHandler struct {
	uc  users.UserUC
	log *logger.ZapLogger
}

// NewUserHandler creates the HTTP handler
func NewUserHandler(uc users.UserUC, log *logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, resp)
}

// Me handles GET /auth/me
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	user, err := h.uc.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, user)
}

// GetLocation handles GET /users/me/location
func (h *UserHandler) GetLocation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	location, err := h.uc.GetUserLocation(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, location)
}

// LocationStatus handles GET /users/me/location/status
func (h *UserHandler) LocationStatus(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	status, err := h.uc.GetLocationStatus(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, status)
}

// UpdateLocation handles PUT /users/me/location
func (h *UserHandler) UpdateLocation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	location, err := h.uc.UpdateUserLocation(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, location)
}

// UpdateAddress handles PUT /users/me/address
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	var req models.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	location, err := h.uc.UpdateUserAddress(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, location)
}

// DeleteLocation handles DELETE /users/me/location
func (h *UserHandler) DeleteLocation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	if err := h.uc.ClearUserLocation(c.Request().Context(), userID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessMessageHandler(c, http.StatusOK, "location cleared")
}

// NearbyStores handles POST /users/me/nearby-stores
func (h *UserHandler) NearbyStores(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	var req models.NearbySearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	stores, err := h.uc.FindNearbyStores(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, stores)
}

// NearbyStoresQuery handles GET /users/me/nearby-stores, the query-parameter
// variant of the search
func (h *UserHandler) NearbyStoresQuery(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	req, err := parseNearbyQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	stores, err := h.uc.FindNearbyStores(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, stores)
}

// DistanceToStore handles GET /users/me/distance-to-store/:id
func (h *UserHandler) DistanceToStore(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "not authenticated")
	}

	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid store id")
	}

	estimate, err := h.uc.DistanceToStore(c.Request().Context(), userID, storeID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, estimate)
}

// LocationStats handles GET /users/location-stats
func (h *UserHandler) LocationStats(c echo.Context) error {
	stats, err := h.uc.GetLocationStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SuccessResponseHandler(c, http.StatusOK, stats)
}

// handleError maps domain errors to HTTP responses
func (h *UserHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrUserNotFound), errors.Is(err, models.ErrStoreNotFound):
		return utils.ErrorResponseHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrEmailTaken):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNoLocationSet):
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("request failed", logger.String("path", c.Path()), logger.ErrorField(err))
		return utils.InternalErrorResponse(c)
	}
}

func parseNearbyQuery(c echo.Context) (models.NearbySearchRequest, error) {
	var req models.NearbySearchRequest

	if raw := c.QueryParam("latitude"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errors.New("invalid latitude")
		}
		req.Latitude = &value
	}
	if raw := c.QueryParam("longitude"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errors.New("invalid longitude")
		}
		req.Longitude = &value
	}
	if raw := c.QueryParam("radius_km"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errors.New("invalid radius_km")
		}
		req.RadiusKm = value
	}
	if raw := c.QueryParam("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return req, errors.New("invalid limit")
		}
		req.Limit = value
	}
	if raw := c.QueryParam("min_rating"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errors.New("invalid min_rating")
		}
		req.MinRating = value
	}
	if raw := c.QueryParam("only_open"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return req, errors.New("invalid only_open")
		}
		req.OnlyOpen = &value
	}

	req.Category = c.QueryParam("category")
	req.SortBy = c.QueryParam("sort_by")

	return req, nil
}
