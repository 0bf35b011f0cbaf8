package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/internal/utils"
)

// GetUserLocation returns the full location view for a user
func (uc *UserUsecase) GetUserLocation(ctx context.Context, userID int64) (*models.UserLocation, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildUserLocation(user), nil
}

// GetLocationStatus returns the condensed location view for a user
func (uc *UserUsecase) GetLocationStatus(ctx context.Context, userID int64) (*models.LocationStatus, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.LocationStatus{
		HasLocation:  user.HasLocation(),
		LastUpdated:  user.LocationUpdatedAt,
		City:         user.City,
		Country:      user.Country,
		ShortAddress: user.ShortAddress(),
	}, nil
}

// UpdateUserLocation stores new coordinates for a user. With AutoGeocode set
// and no address fields provided, the address is resolved from the
// coordinates. The caches and event stream are updated best effort.
func (uc *UserUsecase) UpdateUserLocation(ctx context.Context, userID int64, req models.UpdateLocationRequest) (*models.UserLocation, error) {
	var address *models.Address
	fullAddress := ""

	if hasAddressFields(req) {
		address = &models.Address{
			Street:     req.Street,
			City:       req.City,
			Region:     req.Region,
			Country:    req.Country,
			PostalCode: req.PostalCode,
		}
		fullAddress = joinAddress(req.Street, req.City, req.Region, req.Country)
	} else if req.AutoGeocode {
		// Resolve an address only when the user has none yet; an already
		// stored address wins over a reverse-geocoded one
		current, err := uc.repo.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if current.FullAddress == "" {
			fullAddress = uc.geocoding.ReverseGeocode(ctx, req.Latitude, req.Longitude)
		}
	}

	user, err := uc.repo.UpdateLocation(ctx, userID, req.Latitude, req.Longitude, address, fullAddress)
	if err != nil {
		return nil, err
	}

	uc.afterLocationChange(ctx, userID, models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude})

	return buildUserLocation(user), nil
}

// UpdateUserAddress replaces a user's address. With AutoGeocode set the
// address is also resolved into coordinates.
func (uc *UserUsecase) UpdateUserAddress(ctx context.Context, userID int64, req models.UpdateAddressRequest) (*models.UserLocation, error) {
	address := models.Address{
		Street:     req.Street,
		City:       req.City,
		Region:     req.Region,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	fullAddress := joinAddress(req.Street, req.City, req.Region, req.Country)

	if req.AutoGeocode {
		coord := uc.geocoding.ForwardGeocode(ctx, fullAddress)

		user, err := uc.repo.UpdateLocation(ctx, userID, coord.Latitude, coord.Longitude, &address, fullAddress)
		if err != nil {
			return nil, err
		}

		uc.afterLocationChange(ctx, userID, coord)
		return buildUserLocation(user), nil
	}

	user, err := uc.repo.UpdateAddress(ctx, userID, address, fullAddress)
	if err != nil {
		return nil, err
	}

	return buildUserLocation(user), nil
}

// ClearUserLocation removes a user's coordinates, address and cache entries
func (uc *UserUsecase) ClearUserLocation(ctx context.Context, userID int64) error {
	if err := uc.repo.ClearLocation(ctx, userID); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteLastLocation(ctx, userID); err != nil {
			uc.log.Warn("failed to drop cached location", logger.Int64("user_id", userID), logger.ErrorField(err))
		}
	}

	uc.log.Info("user location cleared", logger.Int64("user_id", userID))
	return nil
}

// afterLocationChange updates the cache and publishes the change event. Both
// are best effort and never fail the request.
func (uc *UserUsecase) afterLocationChange(ctx context.Context, userID int64, coord models.Coordinate) {
	hash := utils.EncodeGeohash(coord.Latitude, coord.Longitude)

	if uc.cache != nil {
		if err := uc.cache.SetLastLocation(ctx, userID, coord, hash); err != nil {
			uc.log.Warn("failed to cache location", logger.Int64("user_id", userID), logger.ErrorField(err))
		}
	}

	if uc.events != nil {
		event := models.LocationUpdateEvent{
			UserID:    userID,
			Location:  coord,
			Geohash:   hash,
			UpdatedAt: time.Now(),
		}
		if err := uc.events.PublishLocationUpdate(ctx, event); err != nil {
			uc.log.Warn("failed to publish location event", logger.Int64("user_id", userID), logger.ErrorField(err))
		}
	}
}

func buildUserLocation(user *models.User) *models.UserLocation {
	view := &models.UserLocation{
		Latitude:          user.Latitude,
		Longitude:         user.Longitude,
		Street:            user.Street,
		City:              user.City,
		Region:            user.Region,
		Country:           user.Country,
		PostalCode:        user.PostalCode,
		FullAddress:       user.FormattedAddress(),
		LocationUpdatedAt: user.LocationUpdatedAt,
		HasLocation:       user.HasLocation(),
		ShortAddress:      user.ShortAddress(),
	}

	if user.HasLocation() {
		view.FormattedCoordinates = utils.FormatCoordinates(*user.Latitude, *user.Longitude)
	}

	return view
}

func hasAddressFields(req models.UpdateLocationRequest) bool {
	return req.Street != "" || req.City != "" || req.Region != "" || req.Country != "" || req.PostalCode != ""
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
