package faceit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faceit_upstream_requests_total",
		Help: "Total number of FACEIT API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "faceit_upstream_request_duration_seconds",
		Help:    "Duration of FACEIT API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)
