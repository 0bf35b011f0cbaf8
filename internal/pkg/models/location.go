package models

import "time"

// Coordinate represents a geographical point in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address groups the individual address fields of a user
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Place is a point of interest returned by the geocoding provider
type Place struct {
	Name       string     `json:"name"`
	FullName   string     `json:"full_name"`
	Coordinate Coordinate `json:"coordinate"`
}

// UserLocation is the full location view of a user
type UserLocation struct {
	Latitude             *float64   `json:"latitude"`
	Longitude            *float64   `json:"longitude"`
	Street               string     `json:"street,omitempty"`
	City                 string     `json:"city,omitempty"`
	Region               string     `json:"region,omitempty"`
	Country              string     `json:"country,omitempty"`
	PostalCode           string     `json:"postal_code,omitempty"`
	FullAddress          string     `json:"full_address,omitempty"`
	LocationUpdatedAt    *time.Time `json:"location_updated_at,omitempty"`
	HasLocation          bool       `json:"has_location"`
	FormattedCoordinates string     `json:"formatted_coordinates,omitempty"`
	ShortAddress         string     `json:"short_address,omitempty"`
}

// LocationStatus is the condensed location view of a user
type LocationStatus struct {
	HasLocation  bool       `json:"has_location"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
	City         string     `json:"city,omitempty"`
	Country      string     `json:"country,omitempty"`
	ShortAddress string     `json:"short_address,omitempty"`
}

// UpdateLocationRequest carries new coordinates, optionally with address fields
type UpdateLocationRequest struct {
	Latitude    float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Street      string  `json:"street,omitempty" validate:"omitempty,max=255"`
	City        string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Region      string  `json:"region,omitempty" validate:"omitempty,max=100"`
	Country     string  `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode  string  `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	AutoGeocode bool    `json:"auto_geocode"`
}

// UpdateAddressRequest carries new address fields, optionally geocoded into
// coordinates
type UpdateAddressRequest struct {
	Street      string `json:"street" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	Region      string `json:"region,omitempty" validate:"omitempty,max=100"`
	Country     string `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode  string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	AutoGeocode bool   `json:"auto_geocode"`
}

// LocationUpdateEvent is published after a user's coordinates change
type LocationUpdateEvent struct {
	UserID    int64      `json:"user_id"`
	Location  Coordinate `json:"location"`
	Geohash   string     `json:"geohash"`
	UpdatedAt time.Time  `json:"updated_at"`
}
