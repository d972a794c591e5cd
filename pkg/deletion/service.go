// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package deletion removes original log objects after they have been
// archived. A request names the objects inline or through a manifest in
// the temporary logs bucket; every version and delete marker of each object
// is removed with batched DeleteObjects calls, and a manifest is removed once
// its objects have been processed.
//
// Deletion is best effort. Failures abort the current stage, are logged and
// recorded in the Report, and are never returned to the caller:
//   - manifest fetch or decode failure: nothing is deleted
//   - version listing failure on any key: nothing is deleted
//   - DeleteObjects failure: remaining batches are skipped, earlier ones stand
//   - manifest removal failure: logged only
package deletion

import (
	"context"
	"errors"
	"time"

	"github.com/LeeDigitalWorks/logarchive/pkg/config"
	reqctx "github.com/LeeDigitalWorks/logarchive/pkg/context"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/manifest"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"
)

// Stage names the step at which a run stopped.
type Stage string

const (
	StageNone      Stage = ""
	StageResolve   Stage = "resolve"
	StageEnumerate Stage = "enumerate"
	StageDelete    Stage = "delete"
)

// Config configures a Service.
type Config struct {
	// TmpLogsBucket is the bucket manifests are read from and removed from.
	TmpLogsBucket string `validate:"required"`

	// BatchSize is the number of versions per DeleteObjects call.
	BatchSize int `validate:"gte=0,lte=1000"`
}

// Report describes the outcome of one Delete call.
type Report struct {
	RequestID string
	Bucket    string
	Source    Source

	KeysResolved  int
	VersionsFound int

	BatchesIssued   int
	VersionsSent    int
	VersionsRemoved int
	ReportedDeleted int
	ItemErrors      []ItemError

	ManifestRemoved bool
	ManifestErr     error

	// StageFailed is the stage that aborted the run, StageNone otherwise.
	StageFailed Stage
	Err         error
}

// Outcome is a short label for the run result, used as a metric label.
func (r *Report) Outcome() string {
	switch {
	case r.StageFailed != StageNone:
		return "aborted_" + string(r.StageFailed)
	case r.KeysResolved == 0:
		return "noop"
	default:
		return "completed"
	}
}

// ManifestUnavailable reports whether the run stopped because the manifest
// could not be read, as opposed to naming no files.
func (r *Report) ManifestUnavailable() bool {
	return r.StageFailed == StageResolve &&
		(errors.Is(r.Err, manifest.ErrUnavailable) || errors.Is(r.Err, manifest.ErrMalformed))
}

// Service deletes objects and their versions from a bucket.
type Service struct {
	client    objectstore.ObjectStore
	manifests *manifest.Store
	cfg       Config
}

// New returns a Service. A zero BatchSize uses the S3 maximum.
func New(client objectstore.ObjectStore, cfg Config) (*Service, error) {
	if err := config.ValidateStruct(&cfg); err != nil {
		return nil, err
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = objectstore.MaxDeleteObjects
	}
	return &Service{
		client:    client,
		manifests: manifest.NewStore(client, cfg.TmpLogsBucket),
		cfg:       cfg,
	}, nil
}

// Delete runs the deletion pipeline for req and reports what happened.
func (s *Service) Delete(ctx context.Context, req Request) *Report {
	report := &Report{
		RequestID: reqctx.ID(ctx),
		Bucket:    req.BucketName,
		Source:    req.Files.Source(),
	}

	l := logger.Ctx(ctx).With().
		Str("bucket", req.BucketName).
		Str("files", req.Files.String()).
		Logger()
	ctx = logger.WithLogger(ctx, &l)

	start := time.Now()
	defer func() {
		runsTotal.WithLabelValues(report.Outcome()).Inc()
		l.Debug().
			Str("outcome", report.Outcome()).
			Dur("elapsed", time.Since(start)).
			Msg("Deletion run finished")
	}()

	keys, err := s.ResolveKeys(ctx, req.Files)
	if err != nil {
		l.Error().Err(err).Msg("An error occurred when retrieving the file list")
		report.StageFailed, report.Err = StageResolve, err
		keys = nil
	}
	report.KeysResolved = len(keys)

	if len(keys) == 0 {
		l.Info().Msg("No files to delete.")
		return report
	}
	l.Info().Int("files", len(keys)).Msgf("%d files to delete...", len(keys))

	refs, err := s.EnumerateVersions(ctx, req.BucketName, keys)
	if err != nil {
		l.Error().Err(err).Msg("An error occurred while listing object versions")
		report.StageFailed, report.Err = StageEnumerate, err
		return report
	}
	report.VersionsFound = len(refs)
	versionsFound.Add(float64(len(refs)))

	result, err := s.DeleteBatches(ctx, req.BucketName, refs)
	report.BatchesIssued = result.Batches
	report.VersionsSent = result.Sent
	report.VersionsRemoved = result.Removed()
	report.ReportedDeleted = result.Reported
	report.ItemErrors = result.Errors
	batchesIssued.Add(float64(result.Batches))
	versionsRemoved.Add(float64(result.Removed()))
	for _, e := range result.Errors {
		itemErrors.WithLabelValues(e.Code).Inc()
		l.Warn().
			Str("key", e.Key).
			Str("version_id", e.VersionID).
			Str("code", e.Code).
			Msg(e.Message)
	}
	if err != nil {
		l.Error().Err(err).Int("batches_issued", result.Batches).Msg("An error occurred during deletion")
		report.StageFailed, report.Err = StageDelete, err
	}

	if key, ok := req.Files.ManifestKey(); ok {
		if err := s.CleanupManifest(ctx, key); err != nil {
			l.Error().Err(err).Msg("An error occurred when deleting the manifest file")
			report.ManifestErr = err
			manifestCleanups.WithLabelValues("error").Inc()
		} else {
			report.ManifestRemoved = true
			manifestCleanups.WithLabelValues("ok").Inc()
		}
	}

	return report
}
