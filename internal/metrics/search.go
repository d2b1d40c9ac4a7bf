package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes.
const (
	OutcomeHit   = "hit"   // at least one result
	OutcomeMiss  = "miss"  // no item scored above zero
	OutcomeShort = "short" // query below minimum length
	OutcomeError = "error" // candidates could not be loaded
)

// Search and seed Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Total number of search queries by outcome",
		},
		[]string{"outcome"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent loading candidates and ranking them",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	SeedItemsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_items_total",
			Help:      "FAQ items written by catalog seeding",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search and seed collectors. Must be called once from main.
func RegisterSearchMetrics(reg prometheus.Registerer) {
	if searchMetricsRegistered {
		return
	}
	reg.MustRegister(SearchQueriesTotal, SearchResults, SearchDuration, SeedItemsTotal)
	searchMetricsRegistered = true
}

// Recorder adapts the package collectors to the usecase recorder interfaces.
type Recorder struct{}

// ObserveSearch records one search.
func (Recorder) ObserveSearch(outcome string, results int, d time.Duration) {
	SearchQueriesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeError {
		return
	}
	SearchResults.Observe(float64(results))
	SearchDuration.Observe(d.Seconds())
}

// ObserveSeed records items written by a seed run.
func (Recorder) ObserveSeed(items int) {
	SeedItemsTotal.Add(float64(items))
}
