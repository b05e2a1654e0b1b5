// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package metrics provides Prometheus instrumentation for Nutrilens:
// API request latency and throughput, precompute pipeline runs, and
// artifact read provenance. Metrics are exposed at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Precompute Pipeline Metrics
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of precompute pipeline runs",
		},
		[]string{"result"}, // "success", "failure"
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_run_duration_seconds",
			Help:    "Precompute pipeline run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PipelineRecordsProcessed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pipeline_records_processed",
			Help: "Number of records processed by the last pipeline run",
		},
	)

	MirrorWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_mirror_write_failures_total",
			Help: "Total number of swallowed local-mirror write failures",
		},
	)

	// Cached Results Metrics
	ArtifactReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifact_reads_total",
			Help: "Total number of summary artifact reads by source",
		},
		[]string{"source"}, // "durable", "local"
	)

	ArtifactMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artifact_misses_total",
			Help: "Total number of summary artifact reads where every source missed",
		},
	)

	// Dataset Metrics
	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records in the in-memory dataset",
		},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPipelineRun records the outcome and duration of one pipeline run.
func RecordPipelineRun(duration time.Duration, records int, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	PipelineRunsTotal.WithLabelValues(result).Inc()
	PipelineDuration.Observe(duration.Seconds())
	if err == nil {
		PipelineRecordsProcessed.Set(float64(records))
	}
}

// RecordMirrorWriteFailure counts a swallowed local-mirror write failure.
func RecordMirrorWriteFailure() {
	MirrorWriteFailures.Inc()
}

// RecordArtifactRead counts a successful summary read by provenance.
func RecordArtifactRead(source string) {
	ArtifactReadsTotal.WithLabelValues(source).Inc()
}

// RecordArtifactMiss counts a read where every fallback source failed.
func RecordArtifactMiss() {
	ArtifactMissesTotal.Inc()
}
