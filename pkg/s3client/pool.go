// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3client builds and caches S3 clients for the log functions.
// A Lambda container serves many invocations, so clients and their HTTP
// connections are kept for the life of the process.
package s3client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	lacfg "github.com/LeeDigitalWorks/logarchive/pkg/config"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Pool caches S3 clients by endpoint, region, access key and role.
type Pool struct {
	mu      sync.RWMutex
	clients map[string]*s3.Client
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{clients: make(map[string]*s3.Client)}
}

var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// Default returns the process-wide Pool.
func Default() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool()
	})
	return defaultPool
}

func cacheKey(cfg lacfg.S3Config) string {
	return fmt.Sprintf("%s|%s|%s|%s", cfg.Endpoint, cfg.Region, cfg.AccessKeyID, cfg.RoleARN)
}

// GetClient returns a client for cfg, creating it on first use.
func (p *Pool) GetClient(ctx context.Context, cfg lacfg.S3Config) (*s3.Client, error) {
	key := cacheKey(cfg)

	p.mu.RLock()
	client, exists := p.clients[key]
	p.mu.RUnlock()
	if exists {
		return client, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if client, exists := p.clients[key]; exists {
		return client, nil
	}

	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.clients[key] = client

	logger.Debug().
		Str("endpoint", cfg.Endpoint).
		Str("region", cfg.Region).
		Bool("assume_role", cfg.RoleARN != "").
		Msg("Created S3 client")

	return client, nil
}

// Len returns the number of cached clients.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.clients)
}

// Close drops every cached client.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clients = make(map[string]*s3.Client)
	return nil
}

// NewHTTPClient returns the HTTP client used by S3 clients built from cfg.
// It stays buildable so the SDK can still apply AWS_CA_BUNDLE to it.
func NewHTTPClient(cfg lacfg.S3Config) *awshttp.BuildableClient {
	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = lacfg.DefaultMaxConns
	}

	return awshttp.NewBuildableClient().
		WithTimeout(cfg.Timeout).
		WithTransportOptions(func(tr *http.Transport) {
			tr.Proxy = http.ProxyFromEnvironment
			tr.MaxIdleConns = maxConns
			tr.MaxIdleConnsPerHost = maxConns
			tr.MaxConnsPerHost = maxConns
			tr.IdleConnTimeout = 90 * time.Second
		})
}

// NewClient builds an uncached S3 client for cfg.
//
// Static keys are used when set, otherwise the default credential chain.
// RoleARN wraps either with an STS AssumeRole provider.
func NewClient(ctx context.Context, cfg lacfg.S3Config) (*s3.Client, error) {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = lacfg.DefaultMaxAttempts
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithHTTPClient(NewHTTPClient(cfg)),
		awsconfig.WithRetryer(func() aws.Retryer {
			return retry.NewStandard(func(o *retry.StandardOptions) {
				o.MaxAttempts = maxAttempts
			})
		}),
		awsconfig.WithLogger(logger.NewSDKAdapter(nil)),
		awsconfig.WithClientLogMode(aws.LogRetries),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	if cfg.RoleARN != "" {
		stsClient := sts.NewFromConfig(awsCfg)
		awsCfg.Credentials = aws.NewCredentialsCache(
			stscreds.NewAssumeRoleProvider(stsClient, cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
				o.RoleSessionName = "logarchive"
			}),
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
