package client

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openshop_client_requests_total",
			Help: "Total number of API requests issued, by method and status code",
		},
		[]string{"method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "openshop_client_request_duration_seconds",
			Help:    "API request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	requestFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openshop_client_request_failures_total",
			Help: "Total number of requests that never produced an HTTP response",
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, requestFailuresTotal)
}

func observeRequest(method string, status int, seconds float64) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(seconds)
}

func observeFailure(method string) {
	requestFailuresTotal.WithLabelValues(method).Inc()
}
