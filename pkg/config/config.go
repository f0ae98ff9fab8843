package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Admin      AdminConfig
	JWT        JWTConfig
	Storefront StorefrontConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig holds the embedded key-value store configuration
type StoreConfig struct {
	Path string
}

// AdminConfig holds the admin account configuration
type AdminConfig struct {
	Email string
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	SigningKey     string
	ExpirationTime time.Duration
}

// StorefrontConfig holds the public store details used in order
// and appointment hand-off messages
type StorefrontConfig struct {
	Name           string
	Email          string
	Website        string
	WhatsAppNumber string
	TaxRate        float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8085"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "lingam.db"),
		},
		Admin: AdminConfig{
			Email: getEnv("ADMIN_EMAIL", "admin@lingam.com"),
		},
		JWT: JWTConfig{
			SigningKey:     getEnv("JWT_SIGNING_KEY", "storefrontsecretkey"),
			ExpirationTime: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Storefront: StorefrontConfig{
			Name:           getEnv("STORE_NAME", "Lingam Aabharanam"),
			Email:          getEnv("STORE_EMAIL", "contact@lingam.com"),
			Website:        getEnv("STORE_WEBSITE", "lingam.com"),
			WhatsAppNumber: getEnv("STORE_WHATSAPP_NUMBER", "17734903951"),
			TaxRate:        getEnvAsFloat("STORE_TAX_RATE", 0.18),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "storefront"),
		},
	}, nil
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
