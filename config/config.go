package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Export storage
	ExportBucket string

	// Minimum rune count before a name search is run. This is a UI-facing
	// threshold enforced at the HTTP layer, not inside the lookup engine.
	SearchMinQueryLength int
}

// LoadConfig builds a Config from environment variables, falling back to
// Docker secrets files in production
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:           getValue("SERVER_PORT", "8080"),
		ServerHost:           getValue("SERVER_HOST", "0.0.0.0"),
		DBHost:               getValue("DB_HOST", "localhost"),
		DBPort:               getValue("DB_PORT", "5432"),
		DBUser:               getValue("DB_USER", ""),
		DBPassword:           getValue("DB_PASSWORD", ""),
		DBName:               getValue("DB_NAME", ""),
		DBSSLMode:            getValue("DB_SSL_MODE", "disable"),
		RedisHost:            getValue("REDIS_HOST", "localhost"),
		RedisPort:            getValue("REDIS_PORT", "6379"),
		RedisPassword:        getValue("REDIS_PASSWORD", ""),
		RedisURL:             getValue("REDIS_URL", ""),
		JWTSecret:            getValue("JWT_SECRET", ""),
		ExportBucket:         getValue("EXPORT_BUCKET", "blanca-med-exports"),
		SearchMinQueryLength: 3,
	}

	if raw := getValue("SEARCH_MIN_QUERY_LENGTH", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SEARCH_MIN_QUERY_LENGTH %q", raw)
		}
		cfg.SearchMinQueryLength = n
	}

	if raw := getValue("REDIS_DB", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q", raw)
		}
		cfg.RedisDB = n
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getValue reads an environment variable, then the matching Docker secret
// file, then the default. Secret names are the lower-cased variable names,
// matching the compose setup.
func getValue(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(name)); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
