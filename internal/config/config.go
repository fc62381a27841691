// Package config loads costgridd settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr          = "COSTGRID_ADDR"
	EnvBaseURL       = "COSTGRID_BASE_URL"
	EnvGinMode       = "GIN_MODE"
	EnvMaxCells      = "COSTGRID_MAX_CELLS"
	EnvMaxIterations = "COSTGRID_MAX_ITERATIONS"
	EnvRedisAddr     = "COSTGRID_REDIS_ADDR"
	EnvRedisPassword = "COSTGRID_REDIS_PASSWORD"
	EnvRedisDB       = "COSTGRID_REDIS_DB"
	EnvCacheTTL      = "COSTGRID_CACHE_TTL"
	EnvCacheMax      = "COSTGRID_CACHE_MAX_ENTRIES"
	EnvLogLevel      = "COSTGRID_LOG_LEVEL"
)

// Config holds the server configuration.
type Config struct {
	Addr            string        // Address the HTTP server listens on
	BaseURL         string        // Prefix for API routes
	GinMode         string        // Mode for the Gin framework (release, debug, test)
	MaxCells        int           // Largest accepted Width×Height of a request grid
	MaxIterations   int           // Expansion cap applied to every best-first search
	RedisAddr       string        // Redis host:port; empty selects the in-memory cache
	RedisPassword   string        // Redis password, optional
	RedisDB         int           // Redis logical database
	CacheTTL        time.Duration // Lifetime of cached search results
	CacheMaxEntries int           // Size cap of the in-memory cache
	LogLevel        slog.Level    // Minimum level of the server logger
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Addr:            ":8080",
		BaseURL:         "/api",
		GinMode:         "release",
		MaxCells:        1_000_000,
		MaxIterations:   1_000_000,
		CacheTTL:        10 * time.Minute,
		CacheMaxEntries: 10_000,
		LogLevel:        slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Variables already present in the environment win over the
// files. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading env file: %w", err)
	}

	cfg := Default()
	cfg.Addr = getEnvWithDefault(EnvAddr, cfg.Addr)
	cfg.BaseURL = getEnvWithDefault(EnvBaseURL, cfg.BaseURL)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)
	cfg.RedisAddr = getEnvWithDefault(EnvRedisAddr, "")
	cfg.RedisPassword = getEnvWithDefault(EnvRedisPassword, "")

	var err error
	if cfg.MaxCells, err = getEnvAsInt(EnvMaxCells, cfg.MaxCells, 1); err != nil {
		return Config{}, err
	}
	if cfg.MaxIterations, err = getEnvAsInt(EnvMaxIterations, cfg.MaxIterations, 0); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getEnvAsInt(EnvRedisDB, 0, 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsDuration(EnvCacheTTL, cfg.CacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.CacheMaxEntries, err = getEnvAsInt(EnvCacheMax, cfg.CacheMaxEntries, 1); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = getEnvAsLevel(EnvLogLevel, cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable that must be at least min.
func getEnvAsInt(key string, defaultValue, min int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.ReplaceAll(raw, "_", ""))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, key, raw)
	}
	if v < min {
		return 0, fmt.Errorf("%w: %s=%d must be at least %d", ErrInvalidValue, key, v, min)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a non-negative duration", ErrInvalidValue, key, raw)
	}
	return d, nil
}

func getEnvAsLevel(key string, defaultValue slog.Level) (slog.Level, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a log level", ErrInvalidValue, key, raw)
	}
	return l, nil
}
