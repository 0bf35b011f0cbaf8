package models

import (
	"strings"
	"time"
)

// User represents a user account with its geolocation fields.
// Latitude and longitude are nullable together: HasLocation is true iff both
// are set, and LocationUpdatedAt is non-nil exactly when they are.
type User struct {
	ID        int64  `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Password  string `db:"password" json:"-"`
	Role      string `db:"role" json:"role"`

	Latitude   *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude  *float64 `db:"longitude" json:"longitude,omitempty"`
	Street     string   `db:"street" json:"street,omitempty"`
	City       string   `db:"city" json:"city,omitempty"`
	Region     string   `db:"region" json:"region,omitempty"`
	Country    string   `db:"country" json:"country,omitempty"`
	PostalCode string   `db:"postal_code" json:"postal_code,omitempty"`

	FullAddress       string     `db:"full_address" json:"full_address,omitempty"`
	LocationUpdatedAt *time.Time `db:"location_updated_at" json:"location_updated_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User roles
const (
	RoleCustomer = "customer"
	RoleCourier  = "courier"
	RoleAdmin    = "admin"
)

// HasLocation reports whether the user has stored coordinates
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Coordinate returns the stored coordinate and whether it is set
func (u *User) Coordinate() (Coordinate, bool) {
	if !u.HasLocation() {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *u.Latitude, Longitude: *u.Longitude}, true
}

// UpdateLocation sets the coordinates and stamps the update time
func (u *User) UpdateLocation(latitude, longitude float64) {
	u.Latitude = &latitude
	u.Longitude = &longitude
	now := time.Now()
	u.LocationUpdatedAt = &now
}

// ClearLocation resets coordinates and the update timestamp together
func (u *User) ClearLocation() {
	u.Latitude = nil
	u.Longitude = nil
	u.LocationUpdatedAt = nil
}

// FormattedAddress returns the cached full address, or assembles one from the
// individual address fields
func (u *User) FormattedAddress() string {
	if strings.TrimSpace(u.FullAddress) != "" {
		return u.FullAddress
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{u.Street, u.City, u.Region, u.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ShortAddress returns "city, country" with either part optional
func (u *User) ShortAddress() string {
	switch {
	case u.City != "" && u.Country != "":
		return u.City + ", " + u.Country
	case u.City != "":
		return u.City
	default:
		return u.Country
	}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"omitempty,oneof=customer courier admin"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
