// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package objectstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// WalkVersions calls fn for every ListObjectVersions page under prefix,
// following the key and version-id markers until the listing is complete.
// The first error, from S3 or from fn, stops the walk.
func WalkVersions(
	ctx context.Context,
	store ObjectStore,
	bucket, prefix string,
	fn func(page *s3.ListObjectVersionsOutput) error,
) error {
	input := &s3.ListObjectVersionsInput{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	for {
		page, err := store.ListObjectVersions(ctx, input)
		if err != nil {
			return Wrap("ListObjectVersions", bucket, prefix, err)
		}
		if err := fn(page); err != nil {
			return err
		}

		if !aws.ToBool(page.IsTruncated) {
			return nil
		}
		// A truncated page without markers would loop forever.
		if page.NextKeyMarker == nil && page.NextVersionIdMarker == nil {
			return nil
		}
		input.KeyMarker = page.NextKeyMarker
		input.VersionIdMarker = page.NextVersionIdMarker
	}
}

// CommonPrefixes returns every common prefix under prefix for the given
// delimiter, across all result pages.
func CommonPrefixes(ctx context.Context, store ObjectStore, bucket, prefix, delimiter string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(store, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String(delimiter),
	})

	prefixes := make([]string, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, Wrap("ListObjectsV2", bucket, prefix, err)
		}
		for _, cp := range page.CommonPrefixes {
			prefixes = append(prefixes, aws.ToString(cp.Prefix))
		}
	}

	return prefixes, nil
}

// BucketNames lists the names of every bucket visible to the caller.
func BucketNames(ctx context.Context, store ObjectStore) ([]string, error) {
	input := &s3.ListBucketsInput{}
	names := make([]string, 0)

	for {
		out, err := store.ListBuckets(ctx, input)
		if err != nil {
			return nil, Wrap("ListBuckets", "", "", err)
		}
		for _, b := range out.Buckets {
			names = append(names, aws.ToString(b.Name))
		}
		if aws.ToString(out.ContinuationToken) == "" {
			return names, nil
		}
		input.ContinuationToken = out.ContinuationToken
	}
}
