package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local development) and the
// process environment
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "user-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", false)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "user-service")
	configs.JWT.SessionExpirationMinutes = GetEnvAsInt("JWT_SESSION_EXPIRATION_MINUTES", 24*60)
	configs.JWT.RememberMeExpirationMinutes = GetEnvAsInt("JWT_REMEMBER_ME_EXPIRATION_MINUTES", 7*24*60)

	// Mapbox config
	configs.Mapbox.Token = GetEnv("MAPBOX_ACCESS_TOKEN", "")
	configs.Mapbox.BaseURL = GetEnv("MAPBOX_BASE_URL", "https://api.mapbox.com/geocoding/v5/mapbox.places")
	configs.Mapbox.Country = GetEnv("MAPBOX_COUNTRY", "ua")
	configs.Mapbox.Limit = GetEnvAsInt("MAPBOX_LIMIT", 1)
	configs.Mapbox.Types = GetEnv("MAPBOX_TYPES", "address,poi")
	configs.Mapbox.ConnectTimeoutMs = GetEnvAsInt("MAPBOX_CONNECT_TIMEOUT_MS", 5000)
	configs.Mapbox.ReadTimeoutMs = GetEnvAsInt("MAPBOX_READ_TIMEOUT_MS", 10000)
	configs.Mapbox.Enabled = GetEnvAsBool("MAPBOX_ENABLED", true)

	// Location config
	configs.Location.DefaultRadiusKm = GetEnvAsFloat("LOCATION_DEFAULT_RADIUS_KM", 10)
	configs.Location.MaxRadiusKm = GetEnvAsFloat("LOCATION_MAX_RADIUS_KM", 50)
	configs.Location.DefaultLimit = GetEnvAsInt("LOCATION_DEFAULT_LIMIT", 20)
	configs.Location.MaxResults = GetEnvAsInt("LOCATION_MAX_RESULTS", 100)
	configs.Location.FallbackLatitude = GetEnvAsFloat("LOCATION_FALLBACK_LATITUDE", 50.0)
	configs.Location.FallbackLongitude = GetEnvAsFloat("LOCATION_FALLBACK_LONGITUDE", 20.0)
	configs.Location.Delivery.BaseTimeMinutes = GetEnvAsInt("DELIVERY_BASE_TIME_MINUTES", 15)
	configs.Location.Delivery.SpeedKmh = GetEnvAsFloat("DELIVERY_SPEED_KMH", 30)
	configs.Location.Delivery.BaseFee = GetEnvAsFloat("DELIVERY_BASE_FEE", 50)
	configs.Location.Delivery.FeePerKm = GetEnvAsFloat("DELIVERY_FEE_PER_KM", 10)

	// Services config
	configs.Services.StoreServiceURL = GetEnv("STORE_SERVICE_URL", "http://localhost:9991")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
