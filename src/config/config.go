package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	DatabaseURL             string
	LogLevel                string
	LogFormat               string
	CategoryCacheTTL        time.Duration
	TransactionsLimit       int
	RecentTransactionsLimit int
}

func Load() (Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	var err error
	if cfg.CategoryCacheTTL, err = time.ParseDuration(getEnv("CATEGORY_CACHE_TTL", "0s")); err != nil {
		return Config{}, fmt.Errorf("CATEGORY_CACHE_TTL: %w", err)
	}
	if cfg.TransactionsLimit, err = getEnvInt("TRANSACTIONS_LIMIT", 50); err != nil {
		return Config{}, err
	}
	if cfg.RecentTransactionsLimit, err = getEnvInt("RECENT_TRANSACTIONS_LIMIT", 10); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}
