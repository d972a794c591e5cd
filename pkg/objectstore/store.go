// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package objectstore defines the slice of the S3 API used by the log
// functions, together with pagination helpers and error classification.
package objectstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the S3 surface the functions depend on. *s3.Client
// satisfies it; tests use the generated mock.
type ObjectStore interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)

	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)

	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)

	ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)

	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)

	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)

	// DeleteObjects accepts at most MaxDeleteObjects identifiers per call.
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// MaxDeleteObjects is the DeleteObjects per-request limit.
const MaxDeleteObjects = 1000

var _ ObjectStore = (*s3.Client)(nil)
