package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Mapbox   MapboxConfig
	Location LocationConfig
	Services ServicesConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string `json:"address"`
	Enabled bool   `json:"enabled"`
}

// JWTConfig holds token signing configuration.
// SessionExpirationMinutes drives ordinary logins, RememberMeExpirationMinutes
// drives the long-lived "remember me" variant.
type JWTConfig struct {
	Secret                      string `json:"secret"`
	Issuer                      string `json:"issuer"`
	SessionExpirationMinutes    int    `json:"session_expiration_minutes"`
	RememberMeExpirationMinutes int    `json:"remember_me_expiration_minutes"`
}

// MapboxConfig holds geocoding provider configuration
type MapboxConfig struct {
	Token            string `json:"token"`
	BaseURL          string `json:"base_url"`
	Country          string `json:"country"`
	Limit            int    `json:"limit"`
	Types            string `json:"types"`
	ConnectTimeoutMs int    `json:"connect_timeout_ms"`
	ReadTimeoutMs    int    `json:"read_timeout_ms"`
	Enabled          bool   `json:"enabled"`
}

// LocationConfig holds search and delivery-estimate configuration
type LocationConfig struct {
	DefaultRadiusKm   float64        `json:"default_radius_km"`
	MaxRadiusKm       float64        `json:"max_radius_km"`
	DefaultLimit      int            `json:"default_limit"`
	MaxResults        int            `json:"max_results"`
	FallbackLatitude  float64        `json:"fallback_latitude"`
	FallbackLongitude float64        `json:"fallback_longitude"`
	Delivery          DeliveryConfig `json:"delivery"`
}

// DeliveryConfig holds the linear delivery cost model
type DeliveryConfig struct {
	BaseTimeMinutes int     `json:"base_time_minutes"`
	SpeedKmh        float64 `json:"speed_kmh"`
	BaseFee         float64 `json:"base_fee"`
	FeePerKm        float64 `json:"fee_per_km"`
}

// ServicesConfig holds URLs of sibling services
type ServicesConfig struct {
	StoreServiceURL string `json:"store_service_url"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
