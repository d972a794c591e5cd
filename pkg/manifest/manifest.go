// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads and removes file manifests: JSON arrays of object
// keys that the aggregation step writes to the temporary logs bucket.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	// ErrUnavailable means the manifest object could not be fetched.
	ErrUnavailable = errors.New("manifest unavailable")

	// ErrMalformed means the manifest was fetched but is not a JSON array of strings.
	ErrMalformed = errors.New("manifest malformed")
)

// maxManifestSize bounds how much of a manifest object is read into memory.
const maxManifestSize = 64 << 20

// Store reads and removes manifests in a single bucket.
type Store struct {
	client objectstore.ObjectStore
	bucket string
}

// NewStore returns a Store for manifests kept in bucket.
func NewStore(client objectstore.ObjectStore, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// Bucket returns the bucket manifests are read from.
func (s *Store) Bucket() string {
	return s.bucket
}

// Fetch downloads the manifest at key and decodes it. Errors wrap
// ErrUnavailable or ErrMalformed.
func (s *Store) Fetch(ctx context.Context, key string) ([]string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, objectstore.Wrap("GetObject", s.bucket, key, err))
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxManifestSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s/%s: %w", ErrUnavailable, s.bucket, key, err)
	}
	if len(data) > maxManifestSize {
		return nil, fmt.Errorf("%w: %s/%s exceeds %d bytes", ErrMalformed, s.bucket, key, maxManifestSize)
	}

	return Decode(data)
}

// Remove deletes the manifest at key.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return objectstore.Wrap("DeleteObject", s.bucket, key, err)
}

// Decode parses a manifest body. A JSON null decodes to an empty list.
func Decode(data []byte) ([]string, error) {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
