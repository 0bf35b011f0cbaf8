package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/internal/utils"
)

// FindNearbyStores searches stores around the request coordinates, or the
// caller's stored location when no coordinates are given. Results are
// filtered, enriched with distance and delivery estimates, and sorted
// locally.
func (uc *UserUsecase) FindNearbyStores(ctx context.Context, userID int64, req models.NearbySearchRequest) ([]models.NearbyStore, error) {
	center, err := uc.resolveSearchCenter(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	radius := clampFloat(req.RadiusKm, 1, uc.location.MaxRadiusKm, uc.location.DefaultRadiusKm)
	limit := clampInt(req.Limit, 1, uc.location.MaxResults, uc.location.DefaultLimit)

	stores, err := uc.stores.FindNearbyStores(ctx, center, radius, limit)
	if err != nil {
		// Provider outages degrade to an empty result, not an error
		uc.log.Warn("nearby store lookup failed", logger.Int64("user_id", userID), logger.ErrorField(err))
		return []models.NearbyStore{}, nil
	}

	results := make([]models.NearbyStore, 0, len(stores))
	for _, store := range stores {
		if !matchesFilters(store, req) {
			continue
		}

		distance := utils.CalculateDistance(center, models.Coordinate{
			Latitude:  store.Latitude,
			Longitude: store.Longitude,
		})
		if distance > radius {
			continue
		}

		store.DistanceKm = distance
		store.DistanceText = utils.FormatDistance(distance)
		store.EstimatedDeliveryTime = utils.EstimateDeliveryMinutes(distance, uc.location.Delivery.SpeedKmh, uc.location.Delivery.BaseTimeMinutes)
		store.DeliveryFee = utils.CalculateDeliveryFee(distance, uc.location.Delivery.BaseFee, uc.location.Delivery.FeePerKm)

		results = append(results, store)
	}

	sortStores(results, req.SortBy)

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// DistanceToStore estimates distance, delivery time and fee from the user's
// stored location to one store
func (uc *UserUsecase) DistanceToStore(ctx context.Context, userID int64, storeID int64) (*models.DistanceEstimate, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	origin, ok := user.Coordinate()
	if !ok {
		return nil, models.ErrNoLocationSet
	}

	store, err := uc.stores.GetStoreLocation(ctx, storeID)
	if err != nil {
		if errors.Is(err, models.ErrStoreNotFound) {
			return nil, err
		}

		// Provider outages degrade to the configured fallback center
		uc.log.Warn("store location lookup failed", logger.Int64("store_id", storeID), logger.ErrorField(err))
		store = &models.StoreLocation{
			StoreID:   storeID,
			Name:      fmt.Sprintf("Store #%d", storeID),
			Latitude:  uc.location.FallbackLatitude,
			Longitude: uc.location.FallbackLongitude,
		}
	}

	distance := utils.CalculateDistance(origin, models.Coordinate{
		Latitude:  store.Latitude,
		Longitude: store.Longitude,
	})

	return &models.DistanceEstimate{
		StoreID:                  store.StoreID,
		StoreName:                store.Name,
		DistanceKm:               distance,
		DistanceText:             utils.FormatDistance(distance),
		EstimatedDeliveryMinutes: utils.EstimateDeliveryMinutes(distance, uc.location.Delivery.SpeedKmh, uc.location.Delivery.BaseTimeMinutes),
		DeliveryFee:              utils.CalculateDeliveryFee(distance, uc.location.Delivery.BaseFee, uc.location.Delivery.FeePerKm),
		CalculatedAt:             time.Now(),
	}, nil
}

// resolveSearchCenter picks the search origin: explicit request coordinates
// win, then the cached location, then the stored one
func (uc *UserUsecase) resolveSearchCenter(ctx context.Context, userID int64, req models.NearbySearchRequest) (models.Coordinate, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}, nil
	}

	if uc.cache != nil {
		if cached, err := uc.cache.GetLastLocation(ctx, userID); err == nil && cached != nil {
			return *cached, nil
		}
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.Coordinate{}, err
	}

	coord, ok := user.Coordinate()
	if !ok {
		return models.Coordinate{}, models.ErrNoLocationSet
	}
	return coord, nil
}

func matchesFilters(store models.NearbyStore, req models.NearbySearchRequest) bool {
	if req.Category != "" && !strings.EqualFold(store.Category, req.Category) {
		return false
	}
	if store.Rating < req.MinRating {
		return false
	}

	onlyOpen := true
	if req.OnlyOpen != nil {
		onlyOpen = *req.OnlyOpen
	}
	if onlyOpen && !store.IsOpen {
		return false
	}

	return true
}

func sortStores(stores []models.NearbyStore, sortBy string) {
	switch sortBy {
	case models.SortByRating:
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].Rating > stores[j].Rating
		})
	case models.SortByDeliveryTime:
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].EstimatedDeliveryTime < stores[j].EstimatedDeliveryTime
		})
	default:
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].DistanceKm < stores[j].DistanceKm
		})
	}
}

func clampFloat(value, min, max, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampInt(value, min, max, fallback int) int {
	if value == 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
