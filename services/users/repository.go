package users

import (
	"context"
	"time"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// UserRepo defines the data access layer for users, their locations and the
// coverage aggregates
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64, address *models.Address, fullAddress string) (*models.User, error)
	UpdateAddress(ctx context.Context, userID int64, address models.Address, fullAddress string) (*models.User, error)
	ClearLocation(ctx context.Context, userID int64) error

	CountUsers(ctx context.Context) (int64, error)
	CountUsersWithLocation(ctx context.Context) (int64, error)
	CountLocationUpdatedSince(ctx context.Context, since time.Time) (int64, error)
	GetCityStats(ctx context.Context, limit int) ([]models.CityStats, error)
	GetCountryStats(ctx context.Context, limit int) ([]models.CountryStats, error)
}

// LocationCache caches last known locations for fast lookups. All methods are
// best effort: callers treat failures as a miss.
type LocationCache interface {
	SetLastLocation(ctx context.Context, userID int64, location models.Coordinate, geohash string) error
	GetLastLocation(ctx context.Context, userID int64) (*models.Coordinate, error)
	DeleteLastLocation(ctx context.Context, userID int64) error
}
