package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Properties PropertiesConfig
	Auth       AuthConfig
	Uploads    UploadConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int
}

// PropertiesConfig holds the external property API settings. The API key is
// a deployment secret and must never come from user input.
type PropertiesConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// AuthConfig holds admin-panel authentication settings.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// UploadConfig holds branding-asset upload settings.
type UploadConfig struct {
	Dir string
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "homez")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_MAX", 10)
	v.SetDefault("PROPERTIES_API_URL", "https://api.2clics.com.ar/api/external")
	v.SetDefault("PROPERTIES_API_TIMEOUT_SECONDS", 10)
	v.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind environment variables
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			PoolMin:  v.GetInt("DB_POOL_MIN"),
			PoolMax:  v.GetInt("DB_POOL_MAX"),
		},
		Properties: PropertiesConfig{
			BaseURL: strings.TrimRight(v.GetString("PROPERTIES_API_URL"), "/"),
			APIKey:  v.GetString("PROPERTIES_API_KEY"),
			Timeout: time.Duration(v.GetInt("PROPERTIES_API_TIMEOUT_SECONDS")) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(v.GetInt("AUTH_TOKEN_TTL_HOURS")) * time.Hour,
		},
		Uploads: UploadConfig{
			Dir: v.GetString("UPLOAD_DIR"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.PoolMin < 0 {
		return fmt.Errorf("DB_POOL_MIN must be non-negative")
	}
	if c.Database.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1")
	}
	if c.Database.PoolMin > c.Database.PoolMax {
		return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
	}

	if c.Properties.BaseURL == "" {
		return fmt.Errorf("PROPERTIES_API_URL is required")
	}
	if c.Properties.APIKey == "" {
		return fmt.Errorf("PROPERTIES_API_KEY is required")
	}
	if c.Properties.Timeout <= 0 {
		return fmt.Errorf("PROPERTIES_API_TIMEOUT_SECONDS must be positive")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL_HOURS must be positive")
	}

	if c.Uploads.Dir == "" {
		return fmt.Errorf("UPLOAD_DIR is required")
	}

	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
