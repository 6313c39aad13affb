package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQL    = "sql"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Record store
	StoreBackend string
	CacheMaxCost int64
	CacheTTL     time.Duration
	RedisURL     string

	// Calendar used by date filters
	Location *time.Location

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreSQL)),
		RedisURL:     getEnv("REDIS_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	costStr := getEnv("CACHE_MAX_COST", "10000")
	cost, err := strconv.ParseInt(costStr, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid CACHE_MAX_COST value '%s', falling back to 10000\n", costStr)
		cost = 10000
	}
	config.CacheMaxCost = cost

	ttlStr := getEnv("CACHE_TTL", "30s")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid CACHE_TTL value '%s', falling back to 30s\n", ttlStr)
		ttl = 30 * time.Second
	}
	config.CacheTTL = ttl

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	config.Location = loc

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.StoreBackend != StoreMemory && c.StoreBackend != StoreSQL {
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreMemory, StoreSQL, c.StoreBackend))
	}
	if c.Env == "production" && c.JWTSecret == "fallback-secret-key-for-dev-only" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if c.CacheMaxCost < 0 {
		errs = append(errs, errors.New("CACHE_MAX_COST must not be negative"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("CACHE_TTL must not be negative"))
	}
	return errors.Join(errs...)
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the global configuration. Tests use it to avoid reading the
// environment.
func Set(c *Config) {
	appConfig = c
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
