package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	"tzconv/internal/timezone"

	"github.com/sirupsen/logrus"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Zones contains the defaults used when a front end receives no zone name
	Zones ZoneConfig
	// Auth contains authentication configuration
	Auth AuthConfig
	// Database contains database configuration
	Database DatabaseConfig
	// History contains conversion history configuration
	History HistoryConfig

	// Rate Limiting Configuration
	RateLimit struct {
		Requests int // Number of requests allowed per window
		Window   int // Time window in seconds
		Burst    int // Maximum burst size
	}

	// LogLevel is the logrus level name
	LogLevel string
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
}

// ZoneConfig contains the default zones
type ZoneConfig struct {
	// DefaultSource is used when no source zone is given
	DefaultSource timezone.Zone
	// DefaultTarget is used when no target zone is given
	DefaultTarget timezone.Zone
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	// JWTSecret is the secret key used to sign JWT tokens
	JWTSecret string
	// TokenDuration is the default lifetime of issued tokens
	TokenDuration time.Duration
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname
	Host string
	// Port is the database server port
	Port int
	// User is the database username
	User string
	// Password is the database password
	Password string
	// DBName is the database name
	DBName string
	// SSLMode is the SSL mode for the database connection
	SSLMode string
	// MigrationsPath is the path to database migrations
	MigrationsPath string
}

// HistoryConfig contains conversion history settings
type HistoryConfig struct {
	// Enabled turns on recording of API conversions
	Enabled bool
	// Retention is how long records are kept
	Retention time.Duration
	// CleanupSchedule is a five field cron expression for pruning
	CleanupSchedule string
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port: getEnvOrDefault("API_PORT", "8080"),
	}

	var err error
	if c.Zones.DefaultSource, err = timezone.Parse(getEnvOrDefault("DEFAULT_SOURCE_ZONE", "UTC")); err != nil {
		return fmt.Errorf("DEFAULT_SOURCE_ZONE: %w", err)
	}
	if c.Zones.DefaultTarget, err = timezone.Parse(getEnvOrDefault("DEFAULT_TARGET_ZONE", "UTC")); err != nil {
		return fmt.Errorf("DEFAULT_TARGET_ZONE: %w", err)
	}

	c.Auth = AuthConfig{
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenDuration: getEnvAsDuration("JWT_TOKEN_DURATION", time.Hour),
	}
	c.Database = DatabaseConfig{
		Host:           getEnvOrDefault("DB_HOST", "localhost"),
		Port:           getEnvAsInt("DB_PORT", 5432),
		User:           getEnvOrDefault("DB_USER", "postgres"),
		Password:       getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getEnvOrDefault("DB_NAME", "tzconv"),
		SSLMode:        getEnvOrDefault("DB_SSL_MODE", "disable"),
		MigrationsPath: getEnvOrDefault("DB_MIGRATIONS_PATH", "migrations"),
	}
	c.History = HistoryConfig{
		Enabled:         getEnvAsBool("HISTORY_ENABLED", false),
		Retention:       getEnvAsDuration("HISTORY_RETENTION", 720*time.Hour),
		CleanupSchedule: getEnvOrDefault("HISTORY_CLEANUP_SCHEDULE", "0 3 * * *"),
	}

	// Load rate limit configuration
	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	c.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	// History endpoints are guarded by JWTs, so a secret is needed once they exist
	if c.History.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when HISTORY_ENABLED is set")
	}

	return nil
}

// Logger builds a logrus logger at the configured level
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
