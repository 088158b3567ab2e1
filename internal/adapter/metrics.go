// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package adapter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Facade-level request metrics.
var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of API requests by method and outcome kind.",
		},
		[]string{"method", "kind"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "API request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "kind"},
	)
)

// RegisterMetrics registers the facade metrics in the default registry.
// Call once at application start; the metrics record regardless, so tests
// can skip registration.
func RegisterMetrics() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

func observeRequest(method string, err error, elapsed time.Duration) {
	kind := FailureKind(err)
	requestsTotal.WithLabelValues(method, kind).Inc()
	requestDuration.WithLabelValues(method, kind).Observe(elapsed.Seconds())
}
