package models

import "time"

// Sort keys accepted by the nearby-store search
const (
	SortByDistance     = "distance"
	SortByRating       = "rating"
	SortByDeliveryTime = "delivery_time"
)

// NearbySearchRequest describes a proximity search. Missing coordinates mean
// "use the caller's stored location"; radius and limit are clamped to the
// configured bounds before the request is delegated to the store service.
type NearbySearchRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	RadiusKm  float64  `json:"radius_km,omitempty" validate:"omitempty,gte=0"`
	Limit     int      `json:"limit,omitempty" validate:"omitempty,gte=0"`
	Category  string   `json:"category,omitempty" validate:"omitempty,max=50"`
	MinRating float64  `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	OnlyOpen  *bool    `json:"only_open,omitempty"`
	SortBy    string   `json:"sort_by,omitempty" validate:"omitempty,oneof=distance rating delivery_time"`
}

// NearbyStore is a point-of-interest record from the store service, enriched
// locally with distance and delivery estimates
type NearbyStore struct {
	StoreID               int64   `json:"store_id"`
	Name                  string  `json:"name"`
	Description           string  `json:"description,omitempty"`
	Category              string  `json:"category,omitempty"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	DistanceKm            float64 `json:"distance_km"`
	DistanceText          string  `json:"distance_text"`
	EstimatedDeliveryTime int     `json:"estimated_delivery_time"`
	Rating                float64 `json:"rating"`
	IsOpen                bool    `json:"is_open"`
	DeliveryFee           float64 `json:"delivery_fee"`
	MinOrderAmount        float64 `json:"min_order_amount"`
}

// StoreLocation is a single store's coordinate record from the store service
type StoreLocation struct {
	StoreID   int64   `json:"store_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// DistanceEstimate is the derived distance/time/fee estimate for one store.
// It is computed per request and never persisted.
type DistanceEstimate struct {
	StoreID                  int64     `json:"store_id"`
	StoreName                string    `json:"store_name"`
	DistanceKm               float64   `json:"distance_km"`
	DistanceText             string    `json:"distance_text"`
	EstimatedDeliveryMinutes int       `json:"estimated_delivery_minutes"`
	DeliveryFee              float64   `json:"delivery_fee"`
	CalculatedAt             time.Time `json:"calculated_at"`
}
