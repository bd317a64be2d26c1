// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalendarCacheHits counts year-calendar lookups served from memory.
	CalendarCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liturgy_calendar_cache_hits_total",
		Help: "Year calendar lookups served from the in-memory cache.",
	})

	// CalendarCacheMisses counts lookups that required an engine computation.
	CalendarCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liturgy_calendar_cache_misses_total",
		Help: "Year calendar lookups that missed the cache.",
	})

	// EngineFailures counts calendar engine errors.
	EngineFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liturgy_engine_failures_total",
		Help: "Calendar engine invocations that returned an error.",
	})

	// EngineComputeSeconds observes full-year computation latency.
	EngineComputeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "liturgy_engine_compute_seconds",
		Help:    "Time spent computing a full year calendar.",
		Buckets: prometheus.DefBuckets,
	})

	// HTTPRequestDuration observes request latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "liturgy_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)
