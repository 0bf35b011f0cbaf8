package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// StoreGateway talks to the store service over HTTP
type StoreGateway struct {
	client  *http.Client
	baseURL string
}

// NewStoreGateway creates the store service gateway
func NewStoreGateway(client *http.Client, baseURL string) *StoreGateway {
	return &StoreGateway{
		client:  client,
		baseURL: baseURL,
	}
}

type nearbyStoresRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
	Limit     int     `json:"limit"`
}

type nearbyStoresResponse struct {
	Stores []models.NearbyStore `json:"stores"`
}

// FindNearbyStores asks the store service for stores around a center
func (g *StoreGateway) FindNearbyStores(ctx context.Context, center models.Coordinate, radiusKm float64, limit int) ([]models.NearbyStore, error) {
	payload, err := json.Marshal(nearbyStoresRequest{
		Latitude:  center.Latitude,
		Longitude: center.Longitude,
		RadiusKm:  radiusKm,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nearby stores request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/stores/nearby", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build nearby stores request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearby stores request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store service returned status %d", resp.StatusCode)
	}

	var parsed nearbyStoresResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode nearby stores response: %w", err)
	}

	return parsed.Stores, nil
}

// GetStoreLocation fetches one store's coordinates. A 404 from the provider
// maps to ErrStoreNotFound.
func (g *StoreGateway) GetStoreLocation(ctx context.Context, storeID int64) (*models.StoreLocation, error) {
	url := fmt.Sprintf("%s/stores/%d/location", g.baseURL, storeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build store location request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store location request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrStoreNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store service returned status %d", resp.StatusCode)
	}

	var location models.StoreLocation
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return nil, fmt.Errorf("failed to decode store location response: %w", err)
	}

	return &location, nil
}
