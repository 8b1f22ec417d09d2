package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the service cannot run without
// is present. Sensitive values have no defaults on purpose; they must
// come from the environment or from Docker secrets.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_NAME":     cfg.DBName,
		"JWT_SECRET":  cfg.JWTSecret,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, ValidationError{Field: field, Message: "is required"}.Error())
		}
	}

	if cfg.SearchMinQueryLength < 1 {
		errors = append(errors, ValidationError{Field: "SEARCH_MIN_QUERY_LENGTH", Message: "must be at least 1"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return nil
}
