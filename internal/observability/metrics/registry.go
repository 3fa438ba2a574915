// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Seed metrics track synthetic data generation.
var (
	// SeedRecordsInserted counts rows written by seed runs, by table.
	SeedRecordsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_records_inserted_total",
			Help: "Total number of rows inserted by seed runs",
		},
		[]string{"table"},
	)

	// SeedRunsTotal counts seed runs by source and outcome.
	SeedRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_runs_total",
			Help: "Total number of seed runs",
		},
		[]string{"source", "status"},
	)
)

// HTTP metrics track HTTP request patterns.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, route, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// RecordInsert records a row written to table.
func RecordInsert(table string) {
	SeedRecordsInserted.WithLabelValues(table).Inc()
}

// RecordSeedRun records the outcome of a seed run for source.
func RecordSeedRun(source string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	SeedRunsTotal.WithLabelValues(source, status).Inc()
}
