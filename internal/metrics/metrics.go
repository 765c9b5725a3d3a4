// Package metrics provides Prometheus metrics for the Spriteforge optimizer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "spriteforge"

var (
	// OptimizerRunsTotal tracks completed optimizer runs by status.
	OptimizerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimizer_runs_total",
			Help:      "Total optimizer runs",
		},
		[]string{"status"}, // success/error
	)

	// OptimizerRunDuration tracks how long optimizer runs take.
	OptimizerRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "optimizer_run_duration_seconds",
			Help:      "Optimizer run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// SpritesRemovedTotal tracks sprites dropped by compaction.
	SpritesRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sprites_removed_total",
			Help:      "Total sprites removed by compaction",
		},
	)

	// DuplicatesCollapsedTotal tracks duplicate sprites merged into a canonical owner.
	DuplicatesCollapsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_collapsed_total",
			Help:      "Total duplicate sprites collapsed",
		},
	)

	// StoreSprites tracks the current sprite store size.
	StoreSprites = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_sprites",
			Help:      "Number of sprites in the current store",
		},
	)

	// DanglingReferences tracks references with no backing sprite seen in the last run.
	DanglingReferences = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dangling_references",
			Help:      "Dangling sprite references found by the last optimizer run",
		},
	)

	// ObjectStoreOps tracks object store operations.
	ObjectStoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objectstore_ops_total",
			Help:      "Total object store operations",
		},
		[]string{"operation", "status"}, // operation: get/put/delete/list/head, status: success/error
	)

	// ObjectStoreLatency tracks object store operation latency.
	ObjectStoreLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "objectstore_latency_seconds",
			Help:      "Object store operation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// SnapshotBytesWritten tracks total bytes written by snapshot saves.
	SnapshotBytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_bytes_written_total",
			Help:      "Total bytes written by snapshot saves",
		},
	)
)

// ObserveOptimizerRun records a completed optimizer run.
func ObserveOptimizerRun(durationSeconds float64, removed, duplicates, dangling int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	OptimizerRunsTotal.WithLabelValues(status).Inc()
	OptimizerRunDuration.Observe(durationSeconds)
	if err == nil {
		SpritesRemovedTotal.Add(float64(removed))
		DuplicatesCollapsedTotal.Add(float64(duplicates))
		DanglingReferences.Set(float64(dangling))
	}
}

// ObserveObjectStoreOp records an object store operation.
func ObserveObjectStoreOp(operation string, latencySeconds float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ObjectStoreOps.WithLabelValues(operation, status).Inc()
	ObjectStoreLatency.WithLabelValues(operation).Observe(latencySeconds)
}

// SetStoreSprites sets the current sprite store size gauge.
func SetStoreSprites(n int) {
	StoreSprites.Set(float64(n))
}
