package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg, reg)

	m.ObserveSearch("AstarL2", "found", 3*time.Millisecond, 120)
	m.ObserveSearch("AstarL2", "found", time.Millisecond, 80)
	m.ObserveSearch("Dijkstra", "budget_exceeded", time.Second, 1000)
	m.ObserveError("GrassFire")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("AstarL2", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("Dijkstra", "budget_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("GrassFire", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
	assert.Equal(t, 2, testutil.CollectAndCount(m.expanded))
}

func TestCacheCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg, reg)
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cache.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cache.WithLabelValues("miss")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSearch("GrassFire", "found", time.Millisecond, 10)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `costgrid_searches_total{algorithm="GrassFire",status="found"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
