// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for dataset acquisition:
// - Archive download throughput and outcomes
// - Archive extraction outcomes
// - Ratings table load performance (DuckDB)
// - End-to-end cache resolution outcomes by starting state

var (
	// Download Metrics
	DownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielens_downloads_total",
			Help: "Total number of archive download attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	DownloadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielens_download_bytes",
			Help:    "Size of downloaded archives in bytes",
			Buckets: prometheus.ExponentialBuckets(1<<20, 4, 8), // 1MiB to 16GiB
		},
	)

	DownloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielens_download_duration_seconds",
			Help:    "Duration of archive downloads in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600}, // Large archives can take minutes
		},
	)

	// Extraction Metrics
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielens_extractions_total",
			Help: "Total number of archive extraction attempts",
		},
		[]string{"result"},
	)

	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielens_extraction_duration_seconds",
			Help:    "Duration of archive extractions in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	// Load Metrics
	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielens_load_duration_seconds",
			Help:    "Duration of ratings table loads in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	LoadedRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielens_loaded_rows",
			Help:    "Number of rating rows per table load",
			Buckets: prometheus.ExponentialBuckets(1000, 10, 6), // 1e3 to 1e8
		},
	)

	// Resolution Metrics
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielens_resolutions_total",
			Help: "Total number of cache resolutions",
		},
		[]string{"result"},
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielens_resolution_duration_seconds",
			Help:    "End-to-end cache resolution duration in seconds",
			Buckets: []float64{0.1, 1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	ResolutionStates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielens_resolution_states_total",
			Help: "Cache states observed at the start of each resolution",
		},
		[]string{"state"}, // "source_ready", "archive_ready", "empty", "override"
	)
)

// resultLabel maps an error outcome to the metric result label.
func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// RecordDownload records a download attempt and its outcome.
func RecordDownload(bytes int64, duration time.Duration, err error) {
	DownloadsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err == nil {
		DownloadBytes.Observe(float64(bytes))
		DownloadDuration.Observe(duration.Seconds())
	}
}

// RecordExtraction records an extraction attempt and its outcome.
func RecordExtraction(duration time.Duration, err error) {
	ExtractionsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err == nil {
		ExtractionDuration.Observe(duration.Seconds())
	}
}

// RecordLoad records a successful ratings table load.
func RecordLoad(rows int, duration time.Duration) {
	LoadDuration.Observe(duration.Seconds())
	LoadedRows.Observe(float64(rows))
}

// RecordResolutionState records the cache state observed when a
// resolution begins.
func RecordResolutionState(state string) {
	ResolutionStates.WithLabelValues(state).Inc()
}

// RecordResolution records a completed resolution and its outcome.
func RecordResolution(duration time.Duration, err error) {
	ResolutionsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err == nil {
		ResolutionDuration.Observe(duration.Seconds())
	}
}
