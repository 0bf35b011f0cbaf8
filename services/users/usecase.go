package users

import (
	"context"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// UserUC is the business layer of the user service
//
//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)

	GetUserLocation(ctx context.Context, userID int64) (*models.UserLocation, error)
	GetLocationStatus(ctx context.Context, userID int64) (*models.LocationStatus, error)
	UpdateUserLocation(ctx context.Context, userID int64, req models.UpdateLocationRequest) (*models.UserLocation, error)
	UpdateUserAddress(ctx context.Context, userID int64, req models.UpdateAddressRequest) (*models.UserLocation, error)
	ClearUserLocation(ctx context.Context, userID int64) error

	FindNearbyStores(ctx context.Context, userID int64, req models.NearbySearchRequest) ([]models.NearbyStore, error)
	DistanceToStore(ctx context.Context, userID int64, storeID int64) (*models.DistanceEstimate, error)

	GetLocationStats(ctx context.Context) (*models.LocationStats, error)
}
