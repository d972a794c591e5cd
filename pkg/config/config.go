// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the process-wide configuration shared by every
// function: bucket names, S3 client settings, deletion tuning and metrics.
//
// Values come from (highest first) CLI flags, environment variables, an
// optional config file and defaults. Environment names are the upper-cased
// keys with "." replaced by "_", so s3.endpoint is read from S3_ENDPOINT and
// tmp_logs_bucket_name from TMP_LOGS_BUCKET_NAME.
package config

import (
	"time"
)

// Config is the complete logarchive configuration.
type Config struct {
	// TmpLogsBucket holds manifests written by the aggregation step.
	TmpLogsBucket string `mapstructure:"tmp_logs_bucket_name"`

	// DestLogsBucket, when set, makes archive keys rooted at the source bucket name.
	DestLogsBucket string `mapstructure:"dest_logs_bucket_name"`

	FinalAggregationPrefix string `mapstructure:"final_aggregation_prefix"`

	// OrgID is the AWS Organizations id used in Control Tower log layouts.
	OrgID string `mapstructure:"org_id"`

	S3      S3Config      `mapstructure:"s3"`
	Delete  DeleteConfig  `mapstructure:"delete"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// S3Config configures the object storage client.
type S3Config struct {
	Region          string        `mapstructure:"region"`
	Endpoint        string        `mapstructure:"endpoint" validate:"omitempty,url"`
	PathStyle       bool          `mapstructure:"path_style"`
	AccessKeyID     string        `mapstructure:"access_key_id" validate:"required_with=SecretAccessKey"`
	SecretAccessKey string        `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
	RoleARN         string        `mapstructure:"role_arn" validate:"omitempty,startswith=arn:"`
	MaxAttempts     int           `mapstructure:"max_attempts" validate:"gte=1,lte=25"`
	MaxConns        int           `mapstructure:"max_conns" validate:"gte=1"`
	Timeout         time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// DeleteConfig tunes the batch deletion function.
type DeleteConfig struct {
	// BatchSize is the number of versions per DeleteObjects call (S3 caps it at 1000).
	BatchSize int `mapstructure:"batch_size" validate:"gte=1,lte=1000"`
}

// MetricsConfig controls the end-of-invocation metrics push.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url" validate:"omitempty,url"`
	Job            string `mapstructure:"job" validate:"required"`
}

// keys lists every configuration key so that viper can resolve each one from
// the environment during Unmarshal.
var keys = []string{
	"tmp_logs_bucket_name",
	"dest_logs_bucket_name",
	"final_aggregation_prefix",
	"org_id",
	"s3.region",
	"s3.endpoint",
	"s3.path_style",
	"s3.access_key_id",
	"s3.secret_access_key",
	"s3.role_arn",
	"s3.max_attempts",
	"s3.max_conns",
	"s3.timeout",
	"delete.batch_size",
	"metrics.pushgateway_url",
	"metrics.job",
}
