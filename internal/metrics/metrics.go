// Package metrics holds the Prometheus collectors of the search service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered for one server.
type Metrics struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	cache    *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// New registers the collectors on a fresh registry, which also carries the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWith(reg, reg)
}

// NewWith registers the collectors on reg and serves metrics from g.
func NewWith(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// Labels: algorithm name; status "found", "exhausted", "budget_exceeded",
		// "propagated" (cost-field requests) or "error".
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "costgrid_searches_total",
			Help: "Total searches by algorithm and outcome",
		}, []string{"algorithm", "status"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "costgrid_search_duration_seconds",
			Help:    "Search duration",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		}, []string{"algorithm"}),

		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "costgrid_search_expanded_cells",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		}, []string{"algorithm"}),

		cache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "costgrid_cache_lookups_total",
			Help: "Result cache lookups by outcome",
		}, []string{"result"}),

		gatherer: g,
	}
}

// ObserveSearch records one finished search.
func (m *Metrics) ObserveSearch(algorithm, status string, d time.Duration, expanded int) {
	m.searches.WithLabelValues(algorithm, status).Inc()
	m.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	m.expanded.WithLabelValues(algorithm).Observe(float64(expanded))
}

// ObserveError records a search rejected before it ran.
func (m *Metrics) ObserveError(algorithm string) {
	m.searches.WithLabelValues(algorithm, "error").Inc()
}

// CacheHit counts a lookup answered from the result cache.
func (m *Metrics) CacheHit() { m.cache.WithLabelValues("hit").Inc() }

// CacheMiss counts a lookup that had to run the search.
func (m *Metrics) CacheMiss() { m.cache.WithLabelValues("miss").Inc() }

// Handler serves the gathered metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
