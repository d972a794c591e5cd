// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package discovery finds the account and region partitions of a Control
// Tower log archive bucket.
package discovery

import (
	"context"
	"fmt"

	"github.com/LeeDigitalWorks/logarchive/pkg/config"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const delimiter = "/"

// AccountPrefixesRequest is the get-account-prefixes event.
type AccountPrefixesRequest struct {
	BucketName string `json:"bucket_name" validate:"required"`
	LogType    string `json:"log_type" validate:"required"`
}

// RegionsRequest is the get-regions event.
type RegionsRequest struct {
	BucketName    string `json:"bucket_name" validate:"required"`
	LogType       string `json:"log_type" validate:"required"`
	AccountPrefix string `json:"account_prefix" validate:"required"`
}

// Config configures a Discoverer.
type Config struct {
	// OrgID is the AWS Organizations id Control Tower nests logs under.
	// Only AccountPrefixes needs it.
	OrgID string
}

// Discoverer lists log partitions.
type Discoverer struct {
	client objectstore.ObjectStore
	cfg    Config
}

// New returns a Discoverer.
func New(client objectstore.ObjectStore, cfg Config) *Discoverer {
	return &Discoverer{client: client, cfg: cfg}
}

// IsCloudTrail reports whether logType uses the Control Tower 3.0 layout,
// which nests account folders one level deeper.
func IsCloudTrail(logType string) bool {
	return logType == "CloudTrail" || logType == "CloudTrail-Digest"
}

// AccountPrefixes returns the per-account prefixes holding logs of logType.
func (d *Discoverer) AccountPrefixes(ctx context.Context, req AccountPrefixesRequest) ([]string, error) {
	if err := config.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if d.cfg.OrgID == "" {
		return nil, fmt.Errorf("discovery: org id is not configured")
	}
	log := logger.Ctx(ctx).With().Str("bucket", req.BucketName).Str("log_type", req.LogType).Logger()

	log.Info().Msgf("Checking existence of %s...", req.BucketName)
	if _, err := d.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(req.BucketName)}); err != nil {
		return nil, objectstore.Wrap("HeadBucket", req.BucketName, "", err)
	}

	if IsCloudTrail(req.LogType) {
		prefix := fmt.Sprintf("%s/AWSLogs/%s/", d.cfg.OrgID, d.cfg.OrgID)
		prefixes, err := objectstore.CommonPrefixes(ctx, d.client, req.BucketName, prefix, delimiter)
		if err != nil {
			return nil, err
		}
		if len(prefixes) > 0 {
			log.Info().Str("prefix", prefix).Msg("Control Tower 3.0+ layout detected")
			return prefixes, nil
		}
		log.Info().Str("prefix", prefix).Msg("No logs found, assuming Control Tower < 3.0 layout")
	}

	prefix := d.cfg.OrgID + "/AWSLogs/"
	prefixes, err := objectstore.CommonPrefixes(ctx, d.client, req.BucketName, prefix, delimiter)
	if err != nil {
		return nil, err
	}
	log.Info().Strs("prefixes", prefixes).Msg("Account prefixes")
	return prefixes, nil
}

// Regions returns the region prefixes under an account prefix for logType.
func (d *Discoverer) Regions(ctx context.Context, req RegionsRequest) ([]string, error) {
	if err := config.ValidateStruct(&req); err != nil {
		return nil, err
	}

	prefix := req.AccountPrefix + req.LogType + delimiter
	prefixes, err := objectstore.CommonPrefixes(ctx, d.client, req.BucketName, prefix, delimiter)
	if err != nil {
		return nil, err
	}
	logger.Ctx(ctx).Info().Str("bucket", req.BucketName).Strs("prefixes", prefixes).Msg("Region prefixes")
	return prefixes, nil
}
