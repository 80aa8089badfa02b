package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juluka_http_requests_total",
			Help: "Number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "juluka_http_request_duration_seconds",
			Help: "HTTP request latency",
		},
		[]string{"method", "path"},
	)

	// OrdersCreated counts successful drop-off intakes.
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "juluka_orders_created_total",
			Help: "Number of service orders created",
		},
	)

	// InsightRequests counts generative-text calls by outcome. Labels:
	// "generated", "fallback".
	InsightRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juluka_insight_requests_total",
			Help: "Number of insight generation attempts",
		},
		[]string{"outcome"},
	)
)
