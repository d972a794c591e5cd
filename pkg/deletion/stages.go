// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package deletion

import (
	"context"
	"fmt"

	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ResolveKeys returns the keys named by files, fetching the manifest when
// files is a manifest reference.
func (s *Service) ResolveKeys(ctx context.Context, files FileSet) ([]string, error) {
	key, ok := files.ManifestKey()
	if !ok {
		return files.Keys(), nil
	}
	return s.manifests.Fetch(ctx, key)
}

// EnumerateVersions lists every version and delete marker of each key. The
// first listing failure aborts the enumeration.
func (s *Service) EnumerateVersions(ctx context.Context, bucket string, keys []string) ([]VersionRef, error) {
	refs := make([]VersionRef, 0, len(keys))

	for _, key := range keys {
		err := objectstore.WalkVersions(ctx, s.client, bucket, key, func(page *s3.ListObjectVersionsOutput) error {
			for _, v := range page.Versions {
				if aws.ToString(v.Key) == key {
					refs = append(refs, VersionRef{Key: key, VersionID: aws.ToString(v.VersionId)})
				}
			}
			for _, m := range page.DeleteMarkers {
				if aws.ToString(m.Key) == key {
					refs = append(refs, VersionRef{Key: key, VersionID: aws.ToString(m.VersionId)})
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("enumerate versions of %s: %w", key, err)
		}
	}

	return refs, nil
}

// ItemError is a per-object failure reported by DeleteObjects.
type ItemError struct {
	Key       string
	VersionID string
	Code      string
	Message   string
}

// BatchResult summarizes the DeleteObjects calls made by DeleteBatches.
type BatchResult struct {
	// Batches is the number of DeleteObjects calls that returned successfully.
	Batches int

	// Sent is the number of versions in those calls.
	Sent int

	// Reported is the number of deletions S3 echoed back. Quiet mode makes
	// this zero unless the backend ignores the flag.
	Reported int

	Errors []ItemError
}

// Removed is the number of sent versions S3 did not report as failed.
func (r BatchResult) Removed() int {
	return r.Sent - len(r.Errors)
}

// DeleteBatches deletes refs with one quiet DeleteObjects call per batch.
// It stops at the first failing call; batches issued before it stand.
func (s *Service) DeleteBatches(ctx context.Context, bucket string, refs []VersionRef) (BatchResult, error) {
	var result BatchResult
	log := logger.Ctx(ctx)

	for i, batch := range Batches(refs, s.cfg.BatchSize) {
		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{
				Objects: identifiers(batch),
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return result, fmt.Errorf("delete batch %d: %w", i, objectstore.Wrap("DeleteObjects", bucket, "", err))
		}

		result.Batches++
		result.Sent += len(batch)
		result.Reported += len(out.Deleted)
		for _, e := range out.Errors {
			result.Errors = append(result.Errors, ItemError{
				Key:       aws.ToString(e.Key),
				VersionID: aws.ToString(e.VersionId),
				Code:      aws.ToString(e.Code),
				Message:   aws.ToString(e.Message),
			})
		}

		log.Info().
			Int("batch", i).
			Int("items", len(batch)).
			Int("deleted", len(out.Deleted)).
			Int("errors", len(out.Errors)).
			Msgf("Deleted %d items.", len(out.Deleted))
	}

	return result, nil
}

// CleanupManifest removes the manifest object once its files were processed.
func (s *Service) CleanupManifest(ctx context.Context, key string) error {
	return s.manifests.Remove(ctx, key)
}

// Batches splits refs into consecutive slices of at most size entries.
func Batches(refs []VersionRef, size int) [][]VersionRef {
	if size <= 0 || size > objectstore.MaxDeleteObjects {
		size = objectstore.MaxDeleteObjects
	}

	batches := make([][]VersionRef, 0, (len(refs)+size-1)/size)
	for i := 0; i < len(refs); i += size {
		end := min(i+size, len(refs))
		batches = append(batches, refs[i:end])
	}
	return batches
}

func identifiers(batch []VersionRef) []types.ObjectIdentifier {
	ids := make([]types.ObjectIdentifier, 0, len(batch))
	for _, ref := range batch {
		id := types.ObjectIdentifier{Key: aws.String(ref.Key)}
		if ref.VersionID != "" {
			id.VersionId = aws.String(ref.VersionID)
		}
		ids = append(ids, id)
	}
	return ids
}
