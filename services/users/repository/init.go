package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/dostavka-go/user-service/internal/pkg/database"
	"github.com/dostavka-go/user-service/internal/pkg/logger"
)

// UserRepository is the PostgreSQL-backed data access layer
type UserRepository struct {
	db  *sqlx.DB
	log *logger.ZapLogger
}

// NewUserRepository creates the user repository
func NewUserRepository(db *sqlx.DB, log *logger.ZapLogger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

// LocationCacheRepository is the Redis-backed last-location cache
type LocationCacheRepository struct {
	redis *database.RedisClient
	log   *logger.ZapLogger
}

// NewLocationCacheRepository creates the location cache
func NewLocationCacheRepository(redis *database.RedisClient, log *logger.ZapLogger) *LocationCacheRepository {
	return &LocationCacheRepository{
		redis: redis,
		log:   log,
	}
}
