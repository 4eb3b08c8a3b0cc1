package metrics

import "github.com/prometheus/client_golang/prometheus"

// Smart-search Prometheus metrics.
var (
	SearchResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catsearch",
			Name:      "search_resolutions_total",
			Help:      "Search requests by the catalog level they resolved to",
		},
		[]string{"level"}, // "brand" / "model" / "variant" / "product"
	)

	SearchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catsearch",
			Name:      "search_failures_total",
			Help:      "Search requests aborted by a fetch or scoring failure",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchResolutionsTotal)
	prometheus.MustRegister(SearchFailuresTotal)
	searchMetricsRegistered = true
}
