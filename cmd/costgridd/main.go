// Command costgridd serves the costgrid searches over HTTP.
//
// Configuration comes from the environment and an optional .env file; see
// internal/config for the variables.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/costgrid/internal/api"
	"github.com/katalvlaran/costgrid/internal/cache"
	"github.com/katalvlaran/costgrid/internal/config"
	"github.com/katalvlaran/costgrid/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	store, err := initCache(cfg, logger)
	if err != nil {
		logger.Error("connecting to redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	m := metrics.New()
	controller := api.NewSearchController(store, m, logger, api.Limits{
		MaxCells:      cfg.MaxCells,
		MaxIterations: cfg.MaxIterations,
	})
	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		Controllers: []api.Controller{controller},
		Logger:      logger,
		Metrics:     m,
	})

	if err := router.Run(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// initCache selects Redis when an address is configured and the in-memory
// cache otherwise.
func initCache(cfg config.Config, logger *slog.Logger) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory result cache", "ttl", cfg.CacheTTL, "max_entries", cfg.CacheMaxEntries)
		return cache.NewMemory(cfg.CacheTTL, cfg.CacheMaxEntries), nil
	}

	r := cache.NewRedis(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		r.Close()
		return nil, err
	}
	logger.Info("using redis result cache", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return r, nil
}
