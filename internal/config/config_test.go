package config

import (
	"os"
	"testing"
	"time"
)

// setRequiredEnvVars sets the variables that have no default value.
func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("PROPERTIES_API_KEY", "test-api-key")
	os.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearConfigEnvVars()
	setRequiredEnvVars(t)
	defer clearConfigEnvVars()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Expected env development, got %s", cfg.Server.Env)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected host localhost, got %s", cfg.Database.Host)
	}
	if cfg.Database.Name != "homez" {
		t.Errorf("Expected db name homez, got %s", cfg.Database.Name)
	}
	if cfg.Database.PoolMin != 2 {
		t.Errorf("Expected pool min 2, got %d", cfg.Database.PoolMin)
	}
	if cfg.Database.PoolMax != 10 {
		t.Errorf("Expected pool max 10, got %d", cfg.Database.PoolMax)
	}
	if cfg.Properties.BaseURL == "" {
		t.Error("Expected a default properties API base URL")
	}
	if cfg.Properties.Timeout != 10*time.Second {
		t.Errorf("Expected 10s properties timeout, got %s", cfg.Properties.Timeout)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Expected 24h token TTL, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Uploads.Dir != "uploads" {
		t.Errorf("Expected upload dir uploads, got %s", cfg.Uploads.Dir)
	}
	if len(cfg.CORS.Origins) != 1 {
		t.Errorf("Expected 1 CORS origin, got %d", len(cfg.CORS.Origins))
	}
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("ENV", "production")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_POOL_MIN", "5")
	os.Setenv("DB_POOL_MAX", "20")
	os.Setenv("PROPERTIES_API_URL", "https://listings.example.com/api/")
	os.Setenv("PROPERTIES_API_KEY", "secret-key")
	os.Setenv("PROPERTIES_API_TIMEOUT_SECONDS", "15")
	os.Setenv("JWT_SECRET", "another-secret")
	os.Setenv("AUTH_TOKEN_TTL_HOURS", "12")
	os.Setenv("UPLOAD_DIR", "/var/homez/uploads")
	os.Setenv("CORS_ORIGINS", "http://example.com,https://app.example.com")
	defer clearConfigEnvVars()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Server.Env != "production" {
		t.Errorf("Expected env production, got %s", cfg.Server.Env)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Expected host db.internal, got %s", cfg.Database.Host)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("Expected db name testdb, got %s", cfg.Database.Name)
	}
	if cfg.Database.PoolMin != 5 || cfg.Database.PoolMax != 20 {
		t.Errorf("Expected pool 5/20, got %d/%d", cfg.Database.PoolMin, cfg.Database.PoolMax)
	}
	// Trailing slash on the base URL is trimmed so path joining stays simple
	if cfg.Properties.BaseURL != "https://listings.example.com/api" {
		t.Errorf("Expected trimmed base URL, got %s", cfg.Properties.BaseURL)
	}
	if cfg.Properties.APIKey != "secret-key" {
		t.Errorf("Expected API key secret-key, got %s", cfg.Properties.APIKey)
	}
	if cfg.Properties.Timeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %s", cfg.Properties.Timeout)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("Expected 12h token TTL, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Uploads.Dir != "/var/homez/uploads" {
		t.Errorf("Expected upload dir /var/homez/uploads, got %s", cfg.Uploads.Dir)
	}
	if len(cfg.CORS.Origins) != 2 {
		t.Errorf("Expected 2 CORS origins, got %d", len(cfg.CORS.Origins))
	}
	if cfg.CORS.Origins[0] != "http://example.com" {
		t.Errorf("Expected first origin http://example.com, got %s", cfg.CORS.Origins[0])
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{name: "missing db password", omit: "DB_PASSWORD"},
		{name: "missing properties api key", omit: "PROPERTIES_API_KEY"},
		{name: "missing jwt secret", omit: "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnvVars()
			setRequiredEnvVars(t)
			os.Unsetenv(tt.omit)
			defer clearConfigEnvVars()

			if _, err := Load(); err == nil {
				t.Errorf("Expected error when %s is missing", tt.omit)
			}
		})
	}
}

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", Env: "development"},
		Database: DatabaseConfig{
			Host: "localhost", Port: "5432", Name: "homez",
			User: "postgres", Password: "postgres", PoolMin: 2, PoolMax: 10,
		},
		Properties: PropertiesConfig{
			BaseURL: "https://listings.example.com/api",
			APIKey:  "key",
			Timeout: 10 * time.Second,
		},
		Auth:    AuthConfig{JWTSecret: "secret", TokenTTL: 24 * time.Hour},
		Uploads: UploadConfig{Dir: "uploads"},
		CORS:    CORSConfig{Origins: []string{"http://localhost:3000"}},
	}
}

func TestValidate_InvalidPoolSizes(t *testing.T) {
	tests := []struct {
		name    string
		poolMin int
		poolMax int
		wantErr bool
	}{
		{name: "negative pool min", poolMin: -1, poolMax: 10, wantErr: true},
		{name: "zero pool max", poolMin: 0, poolMax: 0, wantErr: true},
		{name: "pool min greater than max", poolMin: 15, poolMax: 10, wantErr: true},
		{name: "valid pool sizes", poolMin: 2, poolMax: 10, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Database.PoolMin = tt.poolMin
			cfg.Database.PoolMax = tt.poolMax

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "missing db password", mutate: func(c *Config) { c.Database.Password = "" }},
		{name: "missing properties url", mutate: func(c *Config) { c.Properties.BaseURL = "" }},
		{name: "missing properties key", mutate: func(c *Config) { c.Properties.APIKey = "" }},
		{name: "zero properties timeout", mutate: func(c *Config) { c.Properties.Timeout = 0 }},
		{name: "missing jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }},
		{name: "zero token ttl", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }},
		{name: "missing upload dir", mutate: func(c *Config) { c.Uploads.Dir = "" }},
		{name: "missing CORS origins", mutate: func(c *Config) { c.CORS.Origins = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error but got none")
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "single origin",
			input:  "http://localhost:3000",
			expect: []string{"http://localhost:3000"},
		},
		{
			name:   "multiple origins",
			input:  "http://localhost:3000,http://localhost:3001",
			expect: []string{"http://localhost:3000", "http://localhost:3001"},
		},
		{
			name:   "origins with spaces",
			input:  " http://localhost:3000 , http://localhost:3001 ",
			expect: []string{"http://localhost:3000", "http://localhost:3001"},
		},
		{
			name:   "empty string",
			input:  "",
			expect: []string{},
		},
		{
			name:   "only commas",
			input:  ",,,",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseOrigins(tt.input)
			if len(result) != len(tt.expect) {
				t.Errorf("Expected %d origins, got %d", len(tt.expect), len(result))
				return
			}
			for i, origin := range result {
				if origin != tt.expect[i] {
					t.Errorf("Expected origin %s at index %d, got %s", tt.expect[i], i, origin)
				}
			}
		})
	}
}

// Helper function to clear all config-related environment variables
func clearConfigEnvVars() {
	keys := []string{
		"PORT", "ENV",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_POOL_MIN", "DB_POOL_MAX",
		"PROPERTIES_API_URL", "PROPERTIES_API_KEY", "PROPERTIES_API_TIMEOUT_SECONDS",
		"JWT_SECRET", "AUTH_TOKEN_TTL_HOURS",
		"UPLOAD_DIR", "CORS_ORIGINS",
	}
	for _, k := range keys {
		os.Unsetenv(k)
	}
}
