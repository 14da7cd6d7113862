package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgboard_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// EntityWrites counts create/update/delete operations per entity
	// (organization|user) and their outcome (success|failure).
	EntityWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgboard_entity_writes_total",
			Help: "Total number of entity write operations",
		},
		[]string{"entity", "operation", "result"},
	)
)
