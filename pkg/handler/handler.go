// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package handler binds each log function to its Lambda event shape.
//
// Every invocation gets a child logger carrying the function name and
// request id, is counted and timed in the metrics registry, and pushes the
// registry when a Pushgateway is configured.
package handler

import (
	"context"
	"time"

	"github.com/LeeDigitalWorks/logarchive/pkg/archivekey"
	"github.com/LeeDigitalWorks/logarchive/pkg/config"
	reqctx "github.com/LeeDigitalWorks/logarchive/pkg/context"
	"github.com/LeeDigitalWorks/logarchive/pkg/deletion"
	"github.com/LeeDigitalWorks/logarchive/pkg/discovery"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/metrics"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"
	"github.com/LeeDigitalWorks/logarchive/pkg/setup"
)

// Function names, shared by Lambda deployments and CLI subcommands.
const (
	DeleteOriginals     = "delete-originals"
	DetermineArchiveKey = "determine-archive-key"
	DynamicSetup        = "dynamic-setup"
	GetAccountPrefixes  = "get-account-prefixes"
	GetRegions          = "get-regions"
)

// Names lists every function in a stable order.
var Names = []string{
	DeleteOriginals,
	DetermineArchiveKey,
	DynamicSetup,
	GetAccountPrefixes,
	GetRegions,
}

// Functions holds the shared dependencies of every handler.
type Functions struct {
	cfg    *config.Config
	store  objectstore.ObjectStore
	pusher *metrics.Pusher
	now    func() time.Time
}

// Option configures Functions.
type Option func(*Functions)

// WithClock replaces the time source used by dynamic-setup.
func WithClock(now func() time.Time) Option {
	return func(f *Functions) {
		f.now = now
	}
}

// WithPusher overrides the Pushgateway pusher built from cfg.
func WithPusher(p *metrics.Pusher) Option {
	return func(f *Functions) {
		f.pusher = p
	}
}

// New returns Functions backed by store.
func New(cfg *config.Config, store objectstore.ObjectStore, opts ...Option) *Functions {
	f := &Functions{
		cfg:    cfg,
		store:  store,
		pusher: metrics.NewPusher(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Handler returns the Lambda handler registered under name.
func (f *Functions) Handler(name string) (any, bool) {
	switch name {
	case DeleteOriginals:
		return f.DeleteOriginals, true
	case DetermineArchiveKey:
		return f.DetermineArchiveKey, true
	case DynamicSetup:
		return f.DynamicSetup, true
	case GetAccountPrefixes:
		return f.GetAccountPrefixes, true
	case GetRegions:
		return f.GetRegions, true
	default:
		return nil, false
	}
}

// DeleteOriginals is the delete-originals handler. Only invalid input is
// returned as an error; deletion failures end up in the logs and metrics.
func (f *Functions) DeleteOriginals(ctx context.Context, req deletion.Request) error {
	_, err := f.Delete(ctx, req)
	return err
}

// Delete runs delete-originals and returns its report.
func (f *Functions) Delete(ctx context.Context, req deletion.Request) (*deletion.Report, error) {
	return invoke(ctx, f, DeleteOriginals, func(ctx context.Context) (*deletion.Report, error) {
		if err := f.cfg.RequireTmpLogsBucket(); err != nil {
			return nil, err
		}
		if err := config.ValidateStruct(&req); err != nil {
			return nil, err
		}
		if err := req.Files.Validate(); err != nil {
			return nil, err
		}

		svc, err := deletion.New(f.store, deletion.Config{
			TmpLogsBucket: f.cfg.TmpLogsBucket,
			BatchSize:     f.cfg.Delete.BatchSize,
		})
		if err != nil {
			return nil, err
		}
		return svc.Delete(ctx, req), nil
	})
}

// DetermineArchiveKey is the determine-archive-key handler.
func (f *Functions) DetermineArchiveKey(ctx context.Context, req archivekey.Request) (string, error) {
	return invoke(ctx, f, DetermineArchiveKey, func(ctx context.Context) (string, error) {
		if err := f.cfg.RequireTmpLogsBucket(); err != nil {
			return "", err
		}
		r, err := archivekey.NewResolver(f.store, archivekey.Config{
			TmpLogsBucket:          f.cfg.TmpLogsBucket,
			DestLogsBucket:         f.cfg.DestLogsBucket,
			FinalAggregationPrefix: f.cfg.FinalAggregationPrefix,
		})
		if err != nil {
			return "", err
		}
		return r.Determine(ctx, req)
	})
}

// DynamicSetup is the dynamic-setup handler.
func (f *Functions) DynamicSetup(ctx context.Context, event map[string]any) (map[string]any, error) {
	return invoke(ctx, f, DynamicSetup, func(ctx context.Context) (map[string]any, error) {
		return setup.New(f.store, setup.WithClock(f.now)).Run(ctx, event)
	})
}

// GetAccountPrefixes is the get-account-prefixes handler.
func (f *Functions) GetAccountPrefixes(ctx context.Context, req discovery.AccountPrefixesRequest) ([]string, error) {
	return invoke(ctx, f, GetAccountPrefixes, func(ctx context.Context) ([]string, error) {
		if err := f.cfg.RequireOrgID(); err != nil {
			return nil, err
		}
		return discovery.New(f.store, discovery.Config{OrgID: f.cfg.OrgID}).AccountPrefixes(ctx, req)
	})
}

// GetRegions is the get-regions handler.
func (f *Functions) GetRegions(ctx context.Context, req discovery.RegionsRequest) ([]string, error) {
	return invoke(ctx, f, GetRegions, func(ctx context.Context) ([]string, error) {
		return discovery.New(f.store, discovery.Config{OrgID: f.cfg.OrgID}).Regions(ctx, req)
	})
}

func invoke[T any](ctx context.Context, f *Functions, name string, fn func(context.Context) (T, error)) (T, error) {
	ctx, requestID := reqctx.WithUUID(ctx)
	l := logger.With().
		Str("function", name).
		Str("request_id", requestID).
		Logger()
	ctx = logger.WithLogger(ctx, &l)

	start := time.Now()
	out, err := fn(ctx)
	elapsed := time.Since(start)

	metrics.ObserveInvocation(name, elapsed, err)
	if err != nil {
		l.Error().Err(err).Dur("elapsed", elapsed).Msg("Invocation failed")
	} else {
		l.Debug().Dur("elapsed", elapsed).Msg("Invocation finished")
	}

	// The grouping label must not collide with the "function" metric label.
	if perr := f.pusher.Push(ctx, map[string]string{"handler": name}); perr != nil {
		l.Warn().Err(perr).Msg("Failed to push metrics")
	}

	return out, err
}
