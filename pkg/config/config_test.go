// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMP_LOGS_BUCKET_NAME", "tmp-logs")
	t.Setenv("AWS_REGION", "eu-north-1")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "tmp-logs", cfg.TmpLogsBucket)
	assert.Equal(t, "eu-north-1", cfg.S3.Region)
	assert.Equal(t, DefaultMaxAttempts, cfg.S3.MaxAttempts)
	assert.Equal(t, DefaultMaxConns, cfg.S3.MaxConns)
	assert.Equal(t, MaxDeleteBatchSize, cfg.Delete.BatchSize)
	assert.Equal(t, DefaultMetricsJob, cfg.Metrics.Job)
	assert.False(t, cfg.S3.PathStyle)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TMP_LOGS_BUCKET_NAME", "tmp")
	t.Setenv("DEST_LOGS_BUCKET_NAME", "dest")
	t.Setenv("FINAL_AGGREGATION_PREFIX", "archive")
	t.Setenv("ORG_ID", "o-abc123")
	t.Setenv("S3_REGION", "us-west-2")
	t.Setenv("AWS_REGION", "eu-north-1")
	t.Setenv("S3_ENDPOINT", "http://localhost:4566")
	t.Setenv("S3_PATH_STYLE", "true")
	t.Setenv("S3_MAX_ATTEMPTS", "4")
	t.Setenv("S3_TIMEOUT", "30s")
	t.Setenv("DELETE_BATCH_SIZE", "250")
	t.Setenv("METRICS_PUSHGATEWAY_URL", "http://pushgateway:9091")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "dest", cfg.DestLogsBucket)
	assert.Equal(t, "archive", cfg.FinalAggregationPrefix)
	assert.Equal(t, "o-abc123", cfg.OrgID)
	assert.Equal(t, "us-west-2", cfg.S3.Region)
	assert.Equal(t, "http://localhost:4566", cfg.S3.Endpoint)
	assert.True(t, cfg.S3.PathStyle)
	assert.Equal(t, 4, cfg.S3.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.S3.Timeout)
	assert.Equal(t, 250, cfg.Delete.BatchSize)
	assert.Equal(t, "http://pushgateway:9091", cfg.Metrics.PushgatewayURL)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "batch size over limit", env: map[string]string{"DELETE_BATCH_SIZE": "1001"}},
		{name: "bad endpoint", env: map[string]string{"S3_ENDPOINT": "not a url"}},
		{name: "key without secret", env: map[string]string{"S3_ACCESS_KEY_ID": "AKIA"}},
		{name: "bad role", env: map[string]string{"S3_ROLE_ARN": "role/x"}},
		{name: "too many attempts", env: map[string]string{"S3_MAX_ATTEMPTS": "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Delete: DeleteConfig{BatchSize: 10}}
	ApplyDefaults(cfg)

	assert.Equal(t, 10, cfg.Delete.BatchSize)
	assert.Equal(t, DefaultMaxAttempts, cfg.S3.MaxAttempts)
	assert.NoError(t, Validate(cfg))
}

func TestRequire(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	assert.Error(t, cfg.RequireTmpLogsBucket())
	assert.Error(t, cfg.RequireOrgID())

	cfg.TmpLogsBucket, cfg.OrgID = "tmp", "o-1"
	assert.NoError(t, cfg.RequireTmpLogsBucket())
	assert.NoError(t, cfg.RequireOrgID())
}

func TestValidateStruct_Message(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&struct {
		Name string `validate:"required"`
	}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'required'")
}

func TestResolvePath(t *testing.T) {
	t.Setenv("LOGARCHIVE_TEST_DIR", "/opt/logs")

	assert.Equal(t, "relative/dir", ResolvePath("relative/dir"))
	assert.Equal(t, "/opt/logs/conf", ResolvePath("$LOGARCHIVE_TEST_DIR/conf"))
}
