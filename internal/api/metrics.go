package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const routeUnmatched = "unmatched"

var (
	// RequestsTotal counts API requests by method, route pattern and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_api_requests_total",
		Help: "Total number of admin API requests",
	}, []string{"method", "route", "status"})

	// RequestDuration measures handler latency by route pattern.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "content_api_request_duration_seconds",
		Help:    "Duration of admin API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// RateLimitedTotal counts requests rejected by the per-client limiter.
	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "content_api_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	})

	// PanicsRecovered counts handler panics turned into 500 responses.
	PanicsRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "content_api_panics_recovered_total",
		Help: "Handler panics recovered by the API middleware",
	})
)
