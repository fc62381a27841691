package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costgrid/grid"
	"github.com/katalvlaran/costgrid/internal/cache"
	"github.com/katalvlaran/costgrid/internal/metrics"
)

type fixture struct {
	engine *gin.Engine
	logs   *bytes.Buffer
	cache  *cache.Memory
}

func newFixture(t *testing.T, limits Limits) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := prometheus.NewRegistry()
	m := metrics.NewWith(reg, reg)
	mem := cache.NewMemory(time.Minute, 0)

	r := NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []Controller{NewSearchController(mem, m, logger, limits)},
		Logger:      logger,
		Metrics:     m,
	})
	return &fixture{engine: r.Engine(), logs: logs, cache: mem}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func xy(x, y int) grid.Coordinate { return grid.Coordinate{X: x, Y: y} }

var defaultLimits = Limits{MaxCells: 10_000, MaxIterations: 1_000}

const ringMap = "1 1 1\n1 X 1\n1 1 1"

func TestHealthz(t *testing.T) {
	f := newFixture(t, defaultLimits)
	w := f.do(t, http.MethodGet, "/api/v1/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	_, err := uuid.Parse(w.Header().Get(HeaderRunID))
	assert.NoError(t, err)
	assert.Contains(t, f.logs.String(), "path=/api/v1/healthz")
	assert.Contains(t, f.logs.String(), "run_id="+w.Header().Get(HeaderRunID))
}

func TestAlgorithms(t *testing.T) {
	f := newFixture(t, defaultLimits)
	w := f.do(t, http.MethodGet, "/api/v1/algorithms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "WAstarOctile")
}

func TestSearch_Found(t *testing.T) {
	f := newFixture(t, defaultLimits)
	body := SearchRequest{
		Grid:      GridSpec{Map: ringMap},
		Source:    xy(0, 0),
		Goal:      xy(2, 2),
		Algorithm: "astarl2",
	}
	w := f.do(t, http.MethodPost, "/api/v1/search", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[SearchResponse](t, w)
	assert.Equal(t, "AstarL2", res.Algorithm)
	assert.Equal(t, "found", res.Status)
	require.NotNil(t, res.Cost)
	assert.InDelta(t, 2+math.Sqrt2, *res.Cost, 1e-9)
	require.Len(t, res.Path, 4)
	assert.Equal(t, 0, res.Path[0].X)
	assert.Equal(t, 2, res.Path[3].Y)
	assert.False(t, res.Cached)
	assert.Equal(t, w.Header().Get(HeaderRunID), res.RunID)

	// Same request again is served from the cache under a new run id.
	w2 := f.do(t, http.MethodPost, "/api/v1/search", body)
	require.Equal(t, http.StatusOK, w2.Code)
	res2 := decode[SearchResponse](t, w2)
	assert.True(t, res2.Cached)
	assert.NotEqual(t, res.RunID, res2.RunID)
	assert.Equal(t, res.Path, res2.Path)
	assert.Equal(t, 1, f.cache.Len())
}

func TestSearch_NoPath(t *testing.T) {
	f := newFixture(t, defaultLimits)
	w := f.do(t, http.MethodPost, "/api/v1/search", SearchRequest{
		Grid:      GridSpec{Map: "1 X 1"},
		Source:    xy(0, 0),
		Goal:      xy(2, 0),
		Algorithm: "GrassFire",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), `"cost"`)
	assert.Contains(t, w.Body.String(), `"path":[]`)
	assert.Equal(t, "exhausted", decode[SearchResponse](t, w).Status)
}

func TestSearch_BudgetExceeded(t *testing.T) {
	f := newFixture(t, Limits{MaxCells: 10_000, MaxIterations: 3})
	zero := 0
	w := f.do(t, http.MethodPost, "/api/v1/search", SearchRequest{
		Grid:      GridSpec{Random: &RandomSpec{Width: 50, Height: 50, Obstacles: &zero}},
		Source:    xy(0, 0),
		Goal:      xy(49, 49),
		Algorithm: "Dijkstra",
		// The server cap of 3 wins over a larger request.
		MaxIterations: 500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[SearchResponse](t, w)
	assert.Equal(t, "budget_exceeded", res.Status)
	assert.Nil(t, res.Cost)
	assert.Equal(t, 3, res.Expanded)
	assert.Contains(t, f.logs.String(), "iteration budget exhausted")
}

func TestSearch_BadRequests(t *testing.T) {
	f := newFixture(t, Limits{MaxCells: 100, MaxIterations: 1_000})
	cases := []struct {
		name string
		body any
		code int
	}{
		{"not json", "nope", http.StatusBadRequest},
		{"no algorithm", SearchRequest{Grid: GridSpec{Map: ringMap}}, http.StatusBadRequest},
		{"unknown algorithm", SearchRequest{Grid: GridSpec{Map: ringMap}, Algorithm: "BFS"}, http.StatusBadRequest},
		{"no grid", SearchRequest{Algorithm: "Dijkstra"}, http.StatusBadRequest},
		{"two grids", SearchRequest{
			Grid:      GridSpec{Map: ringMap, Random: &RandomSpec{Width: 2, Height: 2}},
			Algorithm: "Dijkstra",
		}, http.StatusBadRequest},
		{"bad token", SearchRequest{Grid: GridSpec{Map: "1 ? 1"}, Algorithm: "Dijkstra"}, http.StatusBadRequest},
		{"goal outside", SearchRequest{Grid: GridSpec{Map: ringMap}, Goal: xy(3, 0), Algorithm: "AstarL1"}, http.StatusBadRequest},
		{"negative budget", SearchRequest{Grid: GridSpec{Map: ringMap}, Algorithm: "AstarL1", MaxIterations: -1}, http.StatusBadRequest},
		{"bad weight", SearchRequest{Grid: GridSpec{Map: ringMap}, Goal: xy(2, 2), Algorithm: "WAstarL2", Weight: -1}, http.StatusBadRequest},
		{"too large", SearchRequest{
			Grid:      GridSpec{Random: &RandomSpec{Width: 20, Height: 20}},
			Algorithm: "Dijkstra",
		}, http.StatusRequestEntityTooLarge},
		{"side too long", SearchRequest{
			Grid:      GridSpec{Random: &RandomSpec{Width: 1 << 32, Height: 1 << 32, Obstacles: new(int)}},
			Algorithm: "Dijkstra",
		}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/v1/search", tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			res := decode[ErrorResponse](t, w)
			assert.NotEmpty(t, res.Error)
		})
	}
}

// TestBuildGrid_SizeOverflow checks that sides whose product wraps int are
// still rejected as too large.
func TestBuildGrid_SizeOverflow(t *testing.T) {
	c := NewSearchController(nil, nil, slog.Default(), Limits{MaxCells: 10_000})
	_, err := c.buildGrid(GridSpec{Random: &RandomSpec{Width: 1 << 32, Height: 1 << 32}})
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = c.buildGrid(GridSpec{Random: &RandomSpec{Width: 1 << 62, Height: 4}})
	assert.ErrorIs(t, err, ErrTooLarge)

	g, err := c.buildGrid(GridSpec{Random: &RandomSpec{Width: 100, Height: 100, Obstacles: new(int)}})
	require.NoError(t, err)
	assert.Equal(t, 10_000, g.Len())
}

func TestPropagate(t *testing.T) {
	f := newFixture(t, defaultLimits)
	w := f.do(t, http.MethodPost, "/api/v1/propagate", FieldRequest{
		Grid:   GridSpec{Map: "1 X\n1 2"},
		Source: xy(0, 0),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[[0,null],[1,3]]`, string(mustField(t, w, "costs")))
	assert.Equal(t, 3, decode[FieldResponse](t, w).Reached)
}

func TestDistances(t *testing.T) {
	f := newFixture(t, defaultLimits)
	one := 1.0
	w := f.do(t, http.MethodPost, "/api/v1/distances", FieldRequest{
		Grid:        GridSpec{Map: "1 1 1"},
		Source:      xy(0, 0),
		MaxDistance: &one,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[[0,1,null]]`, string(mustField(t, w, "costs")))

	w = f.do(t, http.MethodPost, "/api/v1/distances", FieldRequest{Grid: GridSpec{Map: "1 1"}, Source: xy(5, 5)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, defaultLimits)
	f.do(t, http.MethodPost, "/api/v1/search", SearchRequest{
		Grid: GridSpec{Map: ringMap}, Goal: xy(2, 2), Algorithm: "AstarOctile",
	})
	w := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `costgrid_searches_total{algorithm="AstarOctile",status="found"} 1`), body)
	assert.Contains(t, body, `costgrid_cache_lookups_total{result="miss"} 1`)
}

func TestIterationCap(t *testing.T) {
	c := &SearchController{limits: Limits{MaxIterations: 100}}
	assert.Equal(t, 100, c.iterationCap(0))
	assert.Equal(t, 50, c.iterationCap(50))
	assert.Equal(t, 100, c.iterationCap(500))

	c.limits.MaxIterations = 0
	assert.Equal(t, 0, c.iterationCap(0))
	assert.Equal(t, 7, c.iterationCap(7))
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, name string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m[name]
}
