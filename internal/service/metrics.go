package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics
var (
	itemCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_item_cache_hits_total",
			Help: "Total number of item lookups served from the cache",
		},
	)
	itemCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_item_cache_misses_total",
			Help: "Total number of item lookups that required a backend fetch",
		},
	)
	itemBatchRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_item_batch_requests_total",
			Help: "Total number of item batch requests sent to the backend",
		},
	)
	logEntriesRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_log_entries_rendered_total",
			Help: "Total number of log entries rendered, by log type",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(itemCacheHits)
	prometheus.MustRegister(itemCacheMisses)
	prometheus.MustRegister(itemBatchRequests)
	prometheus.MustRegister(logEntriesRendered)
}
