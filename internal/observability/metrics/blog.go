package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BlogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_requests_total",
			Help: "Total number of blog requests",
		},
		[]string{"method", "path"},
	)

	BlogRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blog_requests_in_flight",
			Help: "Number of blog requests currently being processed",
		},
	)

	BlogRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_request_duration_seconds",
			Help:    "Duration of blog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	PostsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total number of posts created",
		},
	)
)
