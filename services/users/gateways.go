package users

import (
	"context"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// GeocodingGW resolves addresses and coordinates through the external
// geocoding provider. Implementations never return errors: provider failures
// degrade to fallback values.
//
//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateways.go -package=mocks
type GeocodingGW interface {
	ForwardGeocode(ctx context.Context, address string) models.Coordinate
	ReverseGeocode(ctx context.Context, latitude, longitude float64) string
	SearchNearbyPlaces(ctx context.Context, query string, center models.Coordinate, limit int) []models.Place
	Available() bool
}

// StoreGW talks to the store service for proximity data
type StoreGW interface {
	FindNearbyStores(ctx context.Context, center models.Coordinate, radiusKm float64, limit int) ([]models.NearbyStore, error)
	GetStoreLocation(ctx context.Context, storeID int64) (*models.StoreLocation, error)
}

// EventGW publishes location change events. Publishing is best effort and
// never blocks the request path on failure.
type EventGW interface {
	PublishLocationUpdate(ctx context.Context, event models.LocationUpdateEvent) error
}
