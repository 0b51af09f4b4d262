package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Local cache configuration
	DataDir  string
	CacheKey string

	// Remote backend configuration
	SupabaseURL     string
	SupabaseAnonKey string
	UserID          string
	RemoteEnabled   bool
	RemoteTimeout   time.Duration

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// DefaultUserID is the fixed single-user identity used when none is
// configured. The service has no multi-user auth; every remote row
// belongs to this user.
const DefaultUserID = "00000000-0000-0000-0000-000000000123"

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DataDir:  getEnv("DATA_DIR", "data"),
		CacheKey: getEnv("CACHE_KEY", "sik-dan-meals"),

		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		UserID:          getEnv("USER_ID", DefaultUserID),
		RemoteEnabled:   getEnvBool("REMOTE_ENABLED", true),
		RemoteTimeout:   time.Duration(getEnvInt("REMOTE_TIMEOUT_MS", 5000)) * time.Millisecond,

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	// Without Supabase credentials the service runs local-only
	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
		cfg.RemoteEnabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.CacheKey == "" {
		return fmt.Errorf("CACHE_KEY must not be empty")
	}
	if c.Environment == "production" {
		if c.RemoteEnabled && c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required when the remote backend is enabled")
		}
		if c.RemoteEnabled && c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_ANON_KEY is required when the remote backend is enabled")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
