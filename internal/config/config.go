package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string
	SeedData     bool

	// Logging settings
	LogLevel  string
	LogFormat string

	// Judge lookup cache settings
	JudgeCacheSize int
	JudgeCacheTTL  time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/courtcms.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}

	cfg.SeedData = getEnv("SEED_DATA", "true") == "true"

	var err error
	cfg.JudgeCacheSize, err = strconv.Atoi(getEnv("JUDGE_CACHE_SIZE", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid JUDGE_CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("JUDGE_CACHE_TTL", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid JUDGE_CACHE_TTL: %w", err)
	}
	cfg.JudgeCacheTTL = time.Duration(cacheTTL) * time.Minute

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
