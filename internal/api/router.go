// Package api exposes the searches over HTTP with gin.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/costgrid/internal/metrics"
)

// Controller registers a group of routes.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router manages the HTTP server and its dependencies.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      *slog.Logger
	Metrics     *metrics.Metrics // Served on /metrics when set
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      logger,
		metrics:     config.Metrics,
	}
}

// Engine builds the gin engine with every route mounted under baseURL/v1.
func (r *Router) Engine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RunID(), RequestLogger(r.logger))

	if r.metrics != nil {
		router.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	api := router.Group(r.baseURL)
	{
		public := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(public)
		}
	}
	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	r.logger.Info("listening", "addr", r.addr, "base_url", r.baseURL)
	return r.Engine().Run(r.addr)
}
