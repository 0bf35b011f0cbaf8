package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
)

const (
	lastLocationKeyPrefix = "users:last-location:"
	userGeoIndexKey       = "users:geo"
	lastLocationTTL       = 24 * time.Hour
)

type cachedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}

// SetLastLocation stores the user's last coordinates and updates the
// geospatial index
func (c *LocationCacheRepository) SetLastLocation(ctx context.Context, userID int64, location models.Coordinate, geohash string) error {
	payload, err := json.Marshal(cachedLocation{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Geohash:   geohash,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cached location: %w", err)
	}

	key := lastLocationKeyPrefix + strconv.FormatInt(userID, 10)
	if err := c.redis.Set(ctx, key, payload, lastLocationTTL); err != nil {
		return fmt.Errorf("failed to cache last location: %w", err)
	}

	member := strconv.FormatInt(userID, 10)
	if err := c.redis.GeoAdd(ctx, userGeoIndexKey, member, location.Longitude, location.Latitude); err != nil {
		c.log.Warn("failed to update geo index", logger.Int64("user_id", userID), logger.ErrorField(err))
	}

	return nil
}

// GetLastLocation reads the cached coordinates. A cache miss returns nil
// without an error.
func (c *LocationCacheRepository) GetLastLocation(ctx context.Context, userID int64) (*models.Coordinate, error) {
	key := lastLocationKeyPrefix + strconv.FormatInt(userID, 10)

	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached location: %w", err)
	}

	var cached cachedLocation
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached location: %w", err)
	}

	return &models.Coordinate{Latitude: cached.Latitude, Longitude: cached.Longitude}, nil
}

// NearbyUserIDs returns ids of users whose last known location lies within
// radiusKm of the center, nearest first
func (c *LocationCacheRepository) NearbyUserIDs(ctx context.Context, center models.Coordinate, radiusKm float64, limit int) ([]int64, error) {
	locations, err := c.redis.GeoSearch(ctx, userGeoIndexKey, center.Longitude, center.Latitude, radiusKm, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search geo index: %w", err)
	}

	ids := make([]int64, 0, len(locations))
	for _, location := range locations {
		id, err := strconv.ParseInt(location.Name, 10, 64)
		if err != nil {
			c.log.Warn("skipping malformed geo index member", logger.String("member", location.Name))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DeleteLastLocation drops the cached coordinates and the geo index entry
func (c *LocationCacheRepository) DeleteLastLocation(ctx context.Context, userID int64) error {
	key := lastLocationKeyPrefix + strconv.FormatInt(userID, 10)
	if err := c.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete cached location: %w", err)
	}

	member := strconv.FormatInt(userID, 10)
	if err := c.redis.GeoRemove(ctx, userGeoIndexKey, member); err != nil {
		c.log.Warn("failed to remove geo index entry", logger.Int64("user_id", userID), logger.ErrorField(err))
	}

	return nil
}
