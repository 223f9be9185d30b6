// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncMatchesProcessed counts matches fully processed by sync pages
	SyncMatchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "value_radar_sync_matches_processed_total",
		Help: "Matches processed successfully during sync pages",
	})

	// SyncMatchesFailed counts matches whose sync iteration failed
	SyncMatchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "value_radar_sync_matches_failed_total",
		Help: "Matches that failed during sync pages",
	})

	// SyncPages counts completed sync page runs
	SyncPages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "value_radar_sync_pages_total",
		Help: "Completed sync page runs",
	})

	// AnalysesComputed counts persisted analyses by verdict
	AnalysesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "value_radar_analyses_computed_total",
		Help: "Analysis snapshots computed and persisted, by verdict",
	}, []string{"verdict"})

	// ProviderErrors counts failed provider capability calls
	ProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "value_radar_provider_errors_total",
		Help: "Provider capability call failures, by provider",
	}, []string{"provider"})
)
