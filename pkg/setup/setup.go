// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package setup prepares a log aggregation run: it expands bucket name
// prefixes into the buckets that exist and fills in the run date.
package setup

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"

	"github.com/mitchellh/mapstructure"
)

const (
	FieldBucketNames = "bucket_names"
	FieldDate        = "date"

	dateLayout = "2006-01-02"
)

// ErrMissingBucketNames is returned when the event has no bucket_names field.
var ErrMissingBucketNames = errors.New("setup: bucket_names is required")

// event holds the fields Run reads; everything else passes through.
type event struct {
	BucketNames string `mapstructure:"bucket_names"`
	Date        string `mapstructure:"date"`
}

// Service runs the dynamic setup step.
type Service struct {
	client objectstore.ObjectStore
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the time source used to default the run date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New returns a Service listing buckets through client.
func New(client objectstore.ObjectStore, opts ...Option) *Service {
	s := &Service{client: client, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run returns a copy of in with bucket_names replaced by the matching bucket
// names and date set to yesterday (UTC) when absent.
func (s *Service) Run(ctx context.Context, in map[string]any) (map[string]any, error) {
	if _, ok := in[FieldBucketNames]; !ok {
		return nil, ErrMissingBucketNames
	}

	var ev event
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &ev,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(in); err != nil {
		return nil, fmt.Errorf("failed to decode setup event: %w", err)
	}
	if ev.Date != "" {
		if _, err := time.Parse(dateLayout, ev.Date); err != nil {
			return nil, fmt.Errorf("setup: date: %w", err)
		}
	}

	buckets, err := s.MatchBuckets(ctx, ParsePrefixes(ev.BucketNames))
	if err != nil {
		return nil, err
	}

	out := maps.Clone(in)
	out[FieldBucketNames] = buckets
	if ev.Date == "" {
		out[FieldDate] = s.Yesterday()
	}

	logger.Ctx(ctx).Info().
		Strs("buckets", buckets).
		Str("date", fmt.Sprint(out[FieldDate])).
		Msg("Setup complete")
	return out, nil
}

// MatchBuckets lists every bucket and keeps those whose name starts with one
// of prefixes. A bucket matching several prefixes appears once per match.
func (s *Service) MatchBuckets(ctx context.Context, prefixes []string) ([]string, error) {
	result := make([]string, 0)
	if len(prefixes) == 0 {
		return result, nil
	}

	names, err := objectstore.BucketNames(ctx, s.client)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		for _, prefix := range prefixes {
			if strings.HasPrefix(name, prefix) {
				result = append(result, name)
			}
		}
	}
	return result, nil
}

// Yesterday returns the previous UTC day as YYYY-MM-DD.
func (s *Service) Yesterday() string {
	return s.now().UTC().AddDate(0, 0, -1).Format(dateLayout)
}

// ParsePrefixes splits a comma separated list, trimming spaces and dropping
// empty entries.
func ParsePrefixes(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return slices.DeleteFunc(parts, func(p string) bool { return p == "" })
}
