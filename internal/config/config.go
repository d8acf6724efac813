package config

import (
	"os"
	"strconv"
	"time"

	"doc-processor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	TempDir            string
	StorageDir         string
	OCRURL             string
	DatabaseURL        string
	JWTSecret          string
	JWTExpiry          time.Duration
	MaxFileSize        int64
	LogLevel           string
	SuperAdminUsername string
	SuperAdminPassword string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		TempDir:            getEnvOrDefault("TEMP_DIR", "./uploads/tmp"),
		StorageDir:         getEnvOrDefault("STORAGE_DIR", "./uploads/documents"),
		OCRURL:             getEnvOrDefault("OCR_URL", "http://localhost:8000"),
		DatabaseURL:        getEnvOrDefault("DATABASE_URL", ""),
		JWTSecret:          getEnvOrDefault("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:          getEnvDurationOrDefault("JWT_EXPIRATION", 24*time.Hour),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		SuperAdminUsername: getEnvOrDefault("SUPERADMIN_USERNAME", "superadmin"),
		SuperAdminPassword: getEnvOrDefault("SUPERADMIN_PASSWORD", "changeme"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetTempDir returns the temp staging directory path
func (c *AppConfig) GetTempDir() string {
	return c.TempDir
}

// GetStorageDir returns the permanent storage root path
func (c *AppConfig) GetStorageDir() string {
	return c.StorageDir
}

// GetOCRURL returns the OCR service base URL
func (c *AppConfig) GetOCRURL() string {
	return c.OCRURL
}

// GetDatabaseURL returns the database connection string
func (c *AppConfig) GetDatabaseURL() string {
	return c.DatabaseURL
}

// GetJWTSecret returns the JWT signing secret
func (c *AppConfig) GetJWTSecret() string {
	return c.JWTSecret
}

// GetJWTExpiry returns the token lifetime
func (c *AppConfig) GetJWTExpiry() time.Duration {
	return c.JWTExpiry
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSuperAdminUsername returns the bootstrap superadmin username
func (c *AppConfig) GetSuperAdminUsername() string {
	return c.SuperAdminUsername
}

// GetSuperAdminPassword returns the bootstrap superadmin password
func (c *AppConfig) GetSuperAdminPassword() string {
	return c.SuperAdminPassword
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
