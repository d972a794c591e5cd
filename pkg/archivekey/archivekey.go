// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package archivekey derives the object key under which a set of aggregated
// log files is archived.
package archivekey

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LeeDigitalWorks/logarchive/pkg/config"
	"github.com/LeeDigitalWorks/logarchive/pkg/deletion"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/manifest"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"
)

const (
	// DefaultName is used when the files share no common base name and the
	// request carries no log type.
	DefaultName = "Aggregated-Logs"

	// accessLogsMarker identifies S3 server access log buckets, whose
	// aggregates are written uncompressed.
	accessLogsMarker = "s3-access-logs"

	dateLayout = "2006-01-02"
)

// Request is the determine-archive-key event.
type Request struct {
	// Key, when set, is returned unchanged.
	Key string `json:"key,omitempty"`

	Files      deletion.FileSet `json:"files"`
	BucketName string           `json:"bucket_name" validate:"required"`
	Date       string           `json:"date" validate:"required,datetime=2006-01-02"`
	LogType    string           `json:"log_type,omitempty"`
}

// Config configures a Resolver.
type Config struct {
	TmpLogsBucket string `validate:"required"`

	// DestLogsBucket, when set, roots keys at the source bucket name
	// instead of FinalAggregationPrefix.
	DestLogsBucket         string
	FinalAggregationPrefix string
}

// Resolver computes archive keys.
type Resolver struct {
	manifests *manifest.Store
	cfg       Config
}

// NewResolver returns a Resolver reading manifests through client.
func NewResolver(client objectstore.ObjectStore, cfg Config) (*Resolver, error) {
	if err := config.ValidateStruct(&cfg); err != nil {
		return nil, err
	}
	return &Resolver{
		manifests: manifest.NewStore(client, cfg.TmpLogsBucket),
		cfg:       cfg,
	}, nil
}

// Determine returns the archive key for req. Unlike deletion, a manifest
// that cannot be read is an error.
func (r *Resolver) Determine(ctx context.Context, req Request) (string, error) {
	if req.Key != "" {
		return req.Key, nil
	}

	if err := config.ValidateStruct(&req); err != nil {
		return "", err
	}
	if err := req.Files.Validate(); err != nil {
		return "", err
	}
	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("date: %w", err)
	}

	files := req.Files.Keys()
	if key, ok := req.Files.ManifestKey(); ok {
		files, err = r.manifests.Fetch(ctx, key)
		if err != nil {
			return "", err
		}
	}

	name := strings.Trim(CommonPrefix(BaseNames(files)), "-_")
	if name == "" {
		name = req.LogType
	}
	if name == "" {
		name = DefaultName
	}

	key := fmt.Sprintf("%s/%s/%s", r.root(req.BucketName), day.Format("2006/01/02"), name)
	if !strings.Contains(req.BucketName, accessLogsMarker) {
		key += ".gz"
	}

	logger.Ctx(ctx).Info().Str("key", key).Int("files", len(files)).Msgf("Prefix: %s", key)
	return key, nil
}

func (r *Resolver) root(bucket string) string {
	if r.cfg.DestLogsBucket != "" {
		return bucket
	}
	return r.cfg.FinalAggregationPrefix
}

// BaseNames returns the last path segment of each key, cut at its first dot.
func BaseNames(keys []string) []string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if i := strings.LastIndexByte(key, '/'); i >= 0 {
			key = key[i+1:]
		}
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[:i]
		}
		names = append(names, key)
	}
	return names
}

// CommonPrefix returns the longest prefix shared by every string in names.
func CommonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}

	prefix := names[0]
	for _, name := range names[1:] {
		n := min(len(prefix), len(name))
		i := 0
		for i < n && prefix[i] == name[i] {
			i++
		}
		prefix = prefix[:i]
		if prefix == "" {
			return ""
		}
	}

	// Don't split a multi-byte rune.
	for len(prefix) > 0 && !utf8.ValidString(prefix) {
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}
