// Package metrics exposes Prometheus instrumentation for the search engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poiesic/profind/core"
	"github.com/poiesic/profind/search"
)

// SearchMonitor implements search.SearchMonitor with Prometheus metrics.
type SearchMonitor struct {
	searches prometheus.Counter
	failures prometheus.Counter
	empties  prometheus.Counter
	results  prometheus.Histogram
}

var _ search.SearchMonitor = (*SearchMonitor)(nil)

// NewSearchMonitor creates and registers search metrics.
// A nil registerer falls back to the default registry.
func NewSearchMonitor(reg prometheus.Registerer) *SearchMonitor {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &SearchMonitor{
		searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "profind_searches_total",
			Help: "Total number of searches issued",
		}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Name: "profind_search_failures_total",
			Help: "Total number of searches that failed",
		}),
		empties: factory.NewCounter(prometheus.CounterOpts{
			Name: "profind_empty_searches_total",
			Help: "Total number of searches that matched nothing",
		}),
		results: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "profind_search_results",
			Help:    "Number of results per completed search",
			Buckets: prometheus.LinearBuckets(0, 2, 11), // 0 to 20
		}),
	}
}

// Start counts an issued search.
func (m *SearchMonitor) Start(query string) {
	m.searches.Inc()
}

// AfterCandidateRetrieval is a no-op; the result histogram covers it.
func (m *SearchMonitor) AfterCandidateRetrieval(count int) {}

// Failed counts a failed search.
func (m *SearchMonitor) Failed(err error) {
	m.failures.Inc()
}

// Finish records the completed search's result count.
func (m *SearchMonitor) Finish(results []*core.SearchResult) {
	m.results.Observe(float64(len(results)))
	if len(results) == 0 {
		m.empties.Inc()
	}
}

// HandlerFor serves a registry over HTTP.
func HandlerFor(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
