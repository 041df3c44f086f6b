// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabasePath      string // Path to the portfolio SQLite database (DATABASE_URL)
	CacheDatabasePath string // Path to the ephemeral quote cache database
	Port              int
	LogLevel          string
	DevMode           bool
	Backup            *BackupConfig // nil when cloud backups are not configured
}

// BackupConfig holds S3 backup configuration.
// Backups are disabled unless bucket and credentials are all present.
type BackupConfig struct {
	Bucket          string
	Endpoint        string // Optional custom endpoint (S3-compatible stores)
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dbPath := getEnv("DATABASE_URL", "data/portfolio.db")
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	cachePath := getEnv("CACHE_DATABASE_URL", filepath.Join(filepath.Dir(absDBPath), "cache.db"))
	absCachePath, err := filepath.Abs(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absDBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DatabasePath:      absDBPath,
		CacheDatabasePath: absCachePath,
		Port:              getEnvAsInt("PORT", 8001),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		Backup:            loadBackupConfig(),
	}

	return cfg, nil
}

// loadBackupConfig reads the optional S3 backup settings.
// Returns nil when any required field is missing, which disables backups.
func loadBackupConfig() *BackupConfig {
	bucket := getEnv("BACKUP_S3_BUCKET", "")
	accessKey := getEnv("AWS_ACCESS_KEY_ID", "")
	secretKey := getEnv("AWS_SECRET_ACCESS_KEY", "")

	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil
	}

	return &BackupConfig{
		Bucket:          bucket,
		Endpoint:        getEnv("BACKUP_S3_ENDPOINT", ""),
		Region:          getEnv("BACKUP_S3_REGION", "auto"),
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
