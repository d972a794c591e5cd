package deletion

import (
	"github.com/LeeDigitalWorks/logarchive/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.With(metrics.Registry()).NewCounterVec(prometheus.CounterOpts{
		Name: "logarchive_deletion_runs_total",
		Help: "Deletion runs by outcome",
	}, []string{"outcome"})

	versionsFound = promauto.With(metrics.Registry()).NewCounter(prometheus.CounterOpts{
		Name: "logarchive_deletion_versions_found_total",
		Help: "Object versions and delete markers enumerated for deletion",
	})

	batchesIssued = promauto.With(metrics.Registry()).NewCounter(prometheus.CounterOpts{
		Name: "logarchive_deletion_batches_total",
		Help: "DeleteObjects calls issued",
	})

	versionsRemoved = promauto.With(metrics.Registry()).NewCounter(prometheus.CounterOpts{
		Name: "logarchive_deletion_versions_removed_total",
		Help: "Versions sent for deletion that S3 did not report as failed",
	})

	itemErrors = promauto.With(metrics.Registry()).NewCounterVec(prometheus.CounterOpts{
		Name: "logarchive_deletion_item_errors_total",
		Help: "Per-item DeleteObjects errors by S3 error code",
	}, []string{"code"})

	manifestCleanups = promauto.With(metrics.Registry()).NewCounterVec(prometheus.CounterOpts{
		Name: "logarchive_deletion_manifest_cleanups_total",
		Help: "Manifest removals after deletion by status",
	}, []string{"status"})
)
