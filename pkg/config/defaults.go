// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxAttempts matches the retry budget the log functions always ran with.
	DefaultMaxAttempts = 10

	// DefaultMaxConns is the per-client HTTP connection pool size.
	DefaultMaxConns = 50

	// MaxDeleteBatchSize is the S3 DeleteObjects per-request item limit.
	MaxDeleteBatchSize = 1000

	DefaultMetricsJob = "logarchive"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("s3.max_attempts", DefaultMaxAttempts)
	v.SetDefault("s3.max_conns", DefaultMaxConns)
	v.SetDefault("s3.timeout", time.Duration(0))
	v.SetDefault("s3.path_style", false)
	v.SetDefault("delete.batch_size", MaxDeleteBatchSize)
	v.SetDefault("metrics.job", DefaultMetricsJob)
}

// ApplyDefaults fills zero values left after decoding. It is used for configs
// built in code rather than loaded through viper.
func ApplyDefaults(cfg *Config) {
	if cfg.S3.MaxAttempts == 0 {
		cfg.S3.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.S3.MaxConns == 0 {
		cfg.S3.MaxConns = DefaultMaxConns
	}
	if cfg.Delete.BatchSize == 0 {
		cfg.Delete.BatchSize = MaxDeleteBatchSize
	}
	if cfg.Metrics.Job == "" {
		cfg.Metrics.Job = DefaultMetricsJob
	}
}
