//go:build integration

package testutil

import (
	"bytes"
	"context"
	"testing"

	lacfg "github.com/LeeDigitalWorks/logarchive/pkg/config"
	"github.com/LeeDigitalWorks/logarchive/pkg/objectstore"
	"github.com/LeeDigitalWorks/logarchive/pkg/s3client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"
)

// S3Client wraps the AWS S3 client with test helpers
type S3Client struct {
	*s3.Client
	t *testing.T
}

// S3Config returns the S3 settings for an endpoint, read from the
// environment with LocalStack-friendly defaults.
func S3Config(endpoint string) lacfg.S3Config {
	return lacfg.S3Config{
		Endpoint:        endpoint,
		Region:          GetEnv("S3_REGION", "us-east-1"),
		AccessKeyID:     GetEnv("S3_ACCESS_KEY_ID", "test"),
		SecretAccessKey: GetEnv("S3_SECRET_ACCESS_KEY", "test"),
		PathStyle:       true,
		MaxAttempts:     lacfg.DefaultMaxAttempts,
		MaxConns:        lacfg.DefaultMaxConns,
	}
}

// NewS3Client creates an S3 client for testing
func NewS3Client(t *testing.T, cfg lacfg.S3Config) *S3Client {
	t.Helper()

	client, err := s3client.NewClient(context.Background(), cfg)
	require.NoError(t, err, "failed to create S3 client")

	return &S3Client{Client: client, t: t}
}

// CreateVersionedBucket creates a bucket with versioning enabled and removes
// it, with every version, when the test ends.
func (c *S3Client) CreateVersionedBucket(bucket string) {
	c.t.Helper()
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	_, err := c.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	require.NoError(c.t, err, "failed to create bucket %s", bucket)

	_, err = c.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	require.NoError(c.t, err, "failed to enable versioning on %s", bucket)

	c.t.Cleanup(func() {
		c.purge(bucket)
	})
}

// CreateBucketPlain creates an unversioned bucket and removes it when the test ends.
func (c *S3Client) CreateBucketPlain(bucket string) {
	c.t.Helper()
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	_, err := c.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	require.NoError(c.t, err, "failed to create bucket %s", bucket)

	c.t.Cleanup(func() {
		c.purge(bucket)
	})
}

// PutObject uploads data and returns the new version id.
func (c *S3Client) PutObject(bucket, key string, data []byte) string {
	c.t.Helper()
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	out, err := c.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	require.NoError(c.t, err, "failed to put %s/%s", bucket, key)
	return aws.ToString(out.VersionId)
}

// DeleteObject removes the current version of key, leaving a delete marker
// in a versioned bucket.
func (c *S3Client) DeleteObject(bucket, key string) {
	c.t.Helper()
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	_, err := c.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	require.NoError(c.t, err, "failed to delete %s/%s", bucket, key)
}

// CountVersions returns the number of versions and delete markers stored
// under exactly key.
func (c *S3Client) CountVersions(bucket, key string) int {
	c.t.Helper()
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	n := 0
	err := objectstore.WalkVersions(ctx, c.Client, bucket, key, func(page *s3.ListObjectVersionsOutput) error {
		for _, v := range page.Versions {
			if aws.ToString(v.Key) == key {
				n++
			}
		}
		for _, m := range page.DeleteMarkers {
			if aws.ToString(m.Key) == key {
				n++
			}
		}
		return nil
	})
	require.NoError(c.t, err, "failed to list versions of %s/%s", bucket, key)
	return n
}

// ObjectExists reports whether key has a current version.
func (c *S3Client) ObjectExists(bucket, key string) bool {
	c.t.Helper()
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	_, err := c.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	return err == nil
}

func (c *S3Client) purge(bucket string) {
	ctx, cancel := WithTimeout(context.Background())
	defer cancel()

	_ = objectstore.WalkVersions(ctx, c.Client, bucket, "", func(page *s3.ListObjectVersionsOutput) error {
		ids := make([]types.ObjectIdentifier, 0, len(page.Versions)+len(page.DeleteMarkers))
		for _, v := range page.Versions {
			ids = append(ids, types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range page.DeleteMarkers {
			ids = append(ids, types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}
		if len(ids) == 0 {
			return nil
		}
		_, err := c.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		return err
	})

	if _, err := c.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(bucket)}); err != nil {
		c.t.Logf("failed to delete bucket %s: %v", bucket, err)
	}
}
