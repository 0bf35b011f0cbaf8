package usecase

import (
	"github.com/dostavka-go/user-service/internal/pkg/jwt"
	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/services/users"
)

// UserUsecase implements the business layer of the user service
type UserUsecase struct {
	repo      users.UserRepo
	cache     users.LocationCache
	geocoding users.GeocodingGW
	stores    users.StoreGW
	events    users.EventGW
	tokens    *jwt.Service
	location  models.LocationConfig
	log       *logger.ZapLogger
}

// NewUserUsecase wires the business layer. The cache may be nil when Redis is
// disabled.
func NewUserUsecase(
	repo users.UserRepo,
	cache users.LocationCache,
	geocoding users.GeocodingGW,
	stores users.StoreGW,
	events users.EventGW,
	tokens *jwt.Service,
	location models.LocationConfig,
	log *logger.ZapLogger,
) *UserUsecase {
	return &UserUsecase{
		repo:      repo,
		cache:     cache,
		geocoding: geocoding,
		stores:    stores,
		events:    events,
		tokens:    tokens,
		location:  location,
		log:       log,
	}
}
