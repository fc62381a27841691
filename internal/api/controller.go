package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/costmap"
	"github.com/katalvlaran/costgrid/dijkstra"
	"github.com/katalvlaran/costgrid/grassfire"
	"github.com/katalvlaran/costgrid/grid"
	"github.com/katalvlaran/costgrid/internal/cache"
	"github.com/katalvlaran/costgrid/internal/metrics"
	"github.com/katalvlaran/costgrid/internal/solver"
)

// Request errors mapped to 4xx replies.
var (
	ErrGridSpec = errors.New("api: exactly one of grid.map and grid.random must be set")
	ErrTooLarge = errors.New("api: grid exceeds the configured cell limit")
)

// Limits bounds the work a single request may ask for.
type Limits struct {
	MaxCells      int // largest Width×Height
	MaxIterations int // expansion cap; 0 disables it
}

// SearchController handles search and cost-field requests.
type SearchController struct {
	cache   cache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
	limits  Limits
}

// NewSearchController creates a SearchController. c and m may be nil.
func NewSearchController(c cache.Cache, m *metrics.Metrics, logger *slog.Logger, limits Limits) *SearchController {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchController{cache: c, metrics: m, logger: logger, limits: limits}
}

// RegisterPublic registers public routes.
func (c *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/healthz", c.healthz)
	route.GET("/algorithms", c.algorithms)
	route.POST("/search", c.search)
	route.POST("/propagate", c.propagate)
	route.POST("/distances", c.distances)
}

func (c *SearchController) healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (c *SearchController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"algorithms": solver.Algorithms})
}

// search runs a single source→goal search.
func (c *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	algo, err := solver.Canonical(request.Algorithm)
	if err != nil {
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	request.Algorithm = algo
	request.MaxIterations = c.iterationCap(request.MaxIterations)

	key, err := cache.Key("search", request)
	if err != nil {
		c.fail(ctx, http.StatusInternalServerError, err)
		return
	}
	var response SearchResponse
	if c.lookup(ctx.Request.Context(), key, &response) {
		response.RunID = runID(ctx)
		response.Cached = true
		ctx.JSON(http.StatusOK, response)
		return
	}

	g, err := c.buildGrid(request.Grid, request.Source, request.Goal)
	if err != nil {
		c.observeError(algo)
		c.fail(ctx, statusFor(err), err)
		return
	}

	log := c.logger.With("run_id", runID(ctx), "algorithm", algo)
	start := time.Now()
	out, err := solver.Solve(g, request.Source, request.Goal, algo, solver.Options{
		Weight:        request.Weight,
		MaxIterations: request.MaxIterations,
		Orthogonal:    request.Orthogonal,
		Logger:        log,
	})
	elapsed := time.Since(start)
	if err != nil {
		c.observeError(algo)
		c.fail(ctx, statusFor(err), err)
		return
	}
	if c.metrics != nil {
		c.metrics.ObserveSearch(algo, out.Status.String(), elapsed, out.Expanded)
	}

	response = SearchResponse{
		RunID:         runID(ctx),
		Algorithm:     algo,
		Status:        out.Status.String(),
		Cost:          finite(out.Cost),
		Path:          out.Path,
		Expanded:      out.Expanded,
		Pushed:        out.Pushed,
		ExecutionTime: float64(elapsed.Microseconds()) / 1000,
	}
	if response.Path == nil {
		response.Path = []grid.Step{}
	}
	log.Info("search finished",
		"status", response.Status, "expanded", out.Expanded, "elapsed", elapsed)
	c.store(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// propagate returns the grass-fire cost table from a source.
func (c *SearchController) propagate(ctx *gin.Context) {
	var request FieldRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	g, err := c.buildGrid(request.Grid, request.Source)
	if err != nil {
		c.fail(ctx, statusFor(err), err)
		return
	}

	start := time.Now()
	res, err := grassfire.Propagate(g, request.Source, grassfire.WithLogger(c.logger.With("run_id", runID(ctx))))
	if err != nil {
		c.fail(ctx, statusFor(err), err)
		return
	}
	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.ObserveSearch(solver.GrassFire, "propagated", elapsed, res.Stats.Pops)
	}
	c.field(ctx, g, res.Costs(), elapsed)
}

// distances returns the Dijkstra distance field from a source.
func (c *SearchController) distances(ctx *gin.Context) {
	var request FieldRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	g, err := c.buildGrid(request.Grid, request.Source)
	if err != nil {
		c.fail(ctx, statusFor(err), err)
		return
	}

	opts := []dijkstra.Option{dijkstra.Source(request.Source)}
	if request.Orthogonal {
		opts = append(opts, dijkstra.WithConnectivity(grid.Conn4))
	}
	if request.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*request.MaxDistance))
	}

	start := time.Now()
	f, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		c.fail(ctx, statusFor(err), err)
		return
	}
	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.ObserveSearch(solver.Dijkstra, "propagated", elapsed, f.Settled)
	}
	c.field(ctx, g, f.Rows(), elapsed)
}

func (c *SearchController) field(ctx *gin.Context, g *grid.Grid, rows [][]float64, elapsed time.Duration) {
	costs, reached := nullable(rows)
	ctx.JSON(http.StatusOK, FieldResponse{
		RunID:         runID(ctx),
		Width:         g.Width,
		Height:        g.Height,
		Costs:         costs,
		Reached:       reached,
		ExecutionTime: float64(elapsed.Microseconds()) / 1000,
	})
}

// buildGrid materializes spec, keeping the given cells clear on random maps.
func (c *SearchController) buildGrid(spec GridSpec, keep ...grid.Coordinate) (*grid.Grid, error) {
	if (spec.Map == "") == (spec.Random == nil) {
		return nil, ErrGridSpec
	}

	var m *costmap.Map
	var err error
	if spec.Random != nil {
		r := spec.Random
		if c.tooLarge(r.Width, r.Height) {
			return nil, fmt.Errorf("%w: %d×%d > %d", ErrTooLarge, r.Width, r.Height, c.limits.MaxCells)
		}
		opts := []costmap.Option{costmap.WithSeed(r.Seed)}
		if r.Obstacles != nil {
			opts = append(opts, costmap.WithObstacles(*r.Obstacles))
		}
		if r.MaxObstacleSize > 0 {
			opts = append(opts, costmap.WithMaxObstacleSize(r.MaxObstacleSize))
		}
		if r.CrossableRatio != nil {
			opts = append(opts, costmap.WithCrossableRatio(*r.CrossableRatio))
		}
		for _, k := range keep {
			opts = append(opts, costmap.WithClearCells([2]int{k.X, k.Y}))
		}
		m, err = costmap.Random(r.Width, r.Height, opts...)
	} else {
		m, err = costmap.Parse(spec.Map)
		if err == nil && c.tooLarge(m.Width, m.Height) {
			err = fmt.Errorf("%w: %d×%d > %d", ErrTooLarge, m.Width, m.Height, c.limits.MaxCells)
		}
	}
	if err != nil {
		return nil, err
	}
	return m.Grid()
}

// tooLarge reports whether a w×h grid exceeds MaxCells. It divides instead of
// multiplying so huge sides cannot wrap the product.
func (c *SearchController) tooLarge(w, h int) bool {
	if c.limits.MaxCells <= 0 || w <= 0 || h <= 0 {
		return false
	}
	return w > c.limits.MaxCells/h
}

// iterationCap applies the server cap on top of the requested one.
func (c *SearchController) iterationCap(requested int) int {
	limit := c.limits.MaxIterations
	if limit == 0 || (requested > 0 && requested < limit) {
		return requested
	}
	return limit
}

func (c *SearchController) lookup(ctx context.Context, key string, into *SearchResponse) bool {
	if c.cache == nil {
		return false
	}
	b, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache lookup failed", "error", err)
	}
	if ok && err == nil && json.Unmarshal(b, into) == nil {
		if c.metrics != nil {
			c.metrics.CacheHit()
		}
		return true
	}
	if c.metrics != nil {
		c.metrics.CacheMiss()
	}
	return false
}

func (c *SearchController) store(ctx context.Context, key string, response SearchResponse) {
	if c.cache == nil {
		return
	}
	b, err := json.Marshal(response)
	if err == nil {
		err = c.cache.Set(ctx, key, b)
	}
	if err != nil {
		c.logger.Warn("cache store failed", "error", err)
	}
}

func (c *SearchController) observeError(algo string) {
	if c.metrics != nil {
		c.metrics.ObserveError(algo)
	}
}

func (c *SearchController) fail(ctx *gin.Context, status int, err error) {
	ctx.JSON(status, ErrorResponse{RunID: runID(ctx), Error: err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrGridSpec),
		errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNegativeCost),
		errors.Is(err, costmap.ErrEmptyMap),
		errors.Is(err, costmap.ErrRaggedMap),
		errors.Is(err, costmap.ErrBadToken),
		errors.Is(err, astar.ErrOptionViolation),
		errors.Is(err, solver.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, grassfire.ErrBrokenChain):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
