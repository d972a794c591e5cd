// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package deletion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	mocks "github.com/LeeDigitalWorks/logarchive/mocks/objectstore"
	reqctx "github.com/LeeDigitalWorks/logarchive/pkg/context"
	"github.com/LeeDigitalWorks/logarchive/pkg/manifest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testBucket    = "b"
	testTmpBucket = "tmp-logs"
)

func newTestService(t *testing.T, store *mocks.MockObjectStore) *Service {
	t.Helper()
	svc, err := New(store, Config{TmpLogsBucket: testTmpBucket})
	require.NoError(t, err)
	return svc
}

func prefixIs(key string) interface{} {
	return mock.MatchedBy(func(in *s3.ListObjectVersionsInput) bool {
		return aws.ToString(in.Prefix) == key
	})
}

func versionsOutput(key string, versions []string, markers []string) *s3.ListObjectVersionsOutput {
	out := &s3.ListObjectVersionsOutput{IsTruncated: aws.Bool(false)}
	for _, v := range versions {
		out.Versions = append(out.Versions, types.ObjectVersion{Key: aws.String(key), VersionId: aws.String(v)})
	}
	for _, m := range markers {
		out.DeleteMarkers = append(out.DeleteMarkers, types.DeleteMarkerEntry{Key: aws.String(key), VersionId: aws.String(m)})
	}
	return out
}

func manifestBody(t *testing.T, keys []string) *s3.GetObjectOutput {
	t.Helper()
	data, err := json.Marshal(keys)
	require.NoError(t, err)
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}
}

// recordBatches captures every DeleteObjects batch and answers with an empty quiet response.
func recordBatches(store *mocks.MockObjectStore, batches *[][]types.ObjectIdentifier) {
	store.EXPECT().
		DeleteObjects(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			*batches = append(*batches, in.Delete.Objects)
			return &s3.DeleteObjectsOutput{}, nil
		})
}

func TestDelete_InlineKeys_VersionsAndMarkers(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("logs/a.log"), mock.Anything).
		Return(versionsOutput("logs/a.log", []string{"va1"}, []string{"ma1"}), nil).Once()
	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("logs/b.log"), mock.Anything).
		Return(versionsOutput("logs/b.log", []string{"vb1"}, []string{"mb1"}), nil).Once()

	var batches [][]types.ObjectIdentifier
	recordBatches(store, &batches)

	report := svc.Delete(context.Background(), Request{
		BucketName: testBucket,
		Files:      InlineKeys("logs/a.log", "logs/b.log"),
	})

	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 4)
	assert.Equal(t, 4, report.VersionsFound)
	assert.Equal(t, 1, report.BatchesIssued)
	assert.Equal(t, 4, report.VersionsRemoved)
	assert.Equal(t, StageNone, report.StageFailed)
	assert.Equal(t, "completed", report.Outcome())
	assert.False(t, report.ManifestRemoved)

	store.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_QuietModeAndBucket(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("k"), mock.Anything).
		Return(versionsOutput("k", []string{"v1"}, nil), nil)
	store.EXPECT().
		DeleteObjects(mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectsInput) bool {
			return aws.ToString(in.Bucket) == testBucket &&
				aws.ToBool(in.Delete.Quiet) &&
				len(in.Delete.Objects) == 1 &&
				aws.ToString(in.Delete.Objects[0].Key) == "k" &&
				aws.ToString(in.Delete.Objects[0].VersionId) == "v1"
		}), mock.Anything).
		Return(&s3.DeleteObjectsOutput{}, nil).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: InlineKeys("k")})
	assert.Equal(t, 1, report.BatchesIssued)
}

func TestDelete_Manifest_1500Keys(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	keys := make([]string, 1500)
	for i := range keys {
		keys[i] = fmt.Sprintf("logs/%04d.log", i)
	}

	store.EXPECT().
		GetObject(mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Bucket) == testTmpBucket && aws.ToString(in.Key) == "manifests/run123.json"
		}), mock.Anything).
		Return(manifestBody(t, keys), nil).Once()
	store.EXPECT().
		ListObjectVersions(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *s3.ListObjectVersionsInput, _ ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error) {
			return versionsOutput(aws.ToString(in.Prefix), []string{"v1"}, nil), nil
		})

	var batches [][]types.ObjectIdentifier
	recordBatches(store, &batches)

	store.EXPECT().
		DeleteObject(mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return aws.ToString(in.Bucket) == testTmpBucket && aws.ToString(in.Key) == "manifests/run123.json"
		}), mock.Anything).
		Return(&s3.DeleteObjectOutput{}, nil).Once()

	report := svc.Delete(context.Background(), Request{
		BucketName: testBucket,
		Files:      ManifestReference("manifests/run123.json"),
	})

	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[1], 500)
	assert.Equal(t, 1500, report.KeysResolved)
	assert.Equal(t, 1500, report.VersionsFound)
	assert.True(t, report.ManifestRemoved)
	assert.NoError(t, report.ManifestErr)
	assert.Equal(t, SourceManifest, report.Source)
	store.AssertNumberOfCalls(t, "ListObjectVersions", 1500)
}

func TestDelete_ManifestFetchFails(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().GetObject(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "missing"}).Once()

	report := svc.Delete(context.Background(), Request{
		BucketName: testBucket,
		Files:      ManifestReference("manifests/gone.json"),
	})

	assert.Equal(t, StageResolve, report.StageFailed)
	assert.Equal(t, 0, report.KeysResolved)
	assert.True(t, report.ManifestUnavailable())
	assert.ErrorIs(t, report.Err, manifest.ErrUnavailable)
	assert.False(t, report.ManifestRemoved)

	store.AssertNotCalled(t, "ListObjectVersions", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteObjects", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_ManifestMalformed(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().GetObject(mock.Anything, mock.Anything, mock.Anything).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(`{"not":"a list"}`))}, nil).Once()

	report := svc.Delete(context.Background(), Request{
		BucketName: testBucket,
		Files:      ManifestReference("manifests/bad.json"),
	})

	assert.Equal(t, StageResolve, report.StageFailed)
	assert.ErrorIs(t, report.Err, manifest.ErrMalformed)
	assert.True(t, report.ManifestUnavailable())
}

func TestDelete_EmptyInlineList(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: InlineKeys()})

	assert.Equal(t, "noop", report.Outcome())
	assert.Equal(t, StageNone, report.StageFailed)
	store.AssertNotCalled(t, "ListObjectVersions", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_EmptyManifestKeepsManifest(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().GetObject(mock.Anything, mock.Anything, mock.Anything).
		Return(manifestBody(t, []string{}), nil).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: ManifestReference("m.json")})

	assert.Equal(t, "noop", report.Outcome())
	store.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_EnumerationFailureAbortsBeforeDeletion(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("a"), mock.Anything).
		Return(versionsOutput("a", []string{"v1"}, nil), nil).Once()
	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("b"), mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"}).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: InlineKeys("a", "b", "c")})

	assert.Equal(t, StageEnumerate, report.StageFailed)
	assert.Equal(t, "aborted_enumerate", report.Outcome())
	assert.Equal(t, 0, report.BatchesIssued)
	store.AssertNotCalled(t, "DeleteObjects", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "ListObjectVersions", mock.Anything, prefixIs("c"), mock.Anything)
}

func TestDelete_EnumerationFailureKeepsManifest(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().GetObject(mock.Anything, mock.Anything, mock.Anything).
		Return(manifestBody(t, []string{"a"}), nil).Once()
	store.EXPECT().ListObjectVersions(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: ManifestReference("m.json")})

	assert.Equal(t, StageEnumerate, report.StageFailed)
	store.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_BatchFailureStopsRemainingBatches(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc, err := New(store, Config{TmpLogsBucket: testTmpBucket, BatchSize: 2})
	require.NoError(t, err)

	store.EXPECT().GetObject(mock.Anything, mock.Anything, mock.Anything).
		Return(manifestBody(t, []string{"k"}), nil).Once()
	// 5 versions with batch size 2 -> batches of 2, 2, 1; the second one fails.
	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("k"), mock.Anything).
		Return(versionsOutput("k", []string{"v1", "v2", "v3", "v4", "v5"}, nil), nil)

	var issued [][]types.ObjectIdentifier
	store.EXPECT().
		DeleteObjects(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			issued = append(issued, in.Delete.Objects)
			if len(issued) == 2 {
				return nil, &smithy.GenericAPIError{Code: "SlowDown"}
			}
			return &s3.DeleteObjectsOutput{}, nil
		})
	store.EXPECT().DeleteObject(mock.Anything, mock.Anything, mock.Anything).
		Return(&s3.DeleteObjectOutput{}, nil).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: ManifestReference("m.json")})

	assert.Len(t, issued, 2)
	assert.Equal(t, StageDelete, report.StageFailed)
	assert.Equal(t, 1, report.BatchesIssued)
	assert.Equal(t, 2, report.VersionsRemoved)
	// Manifest cleanup still runs after a failed batch.
	assert.True(t, report.ManifestRemoved)
}

func TestDelete_ItemErrorsAreReported(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("k"), mock.Anything).
		Return(versionsOutput("k", []string{"v1", "v2"}, nil), nil)
	store.EXPECT().DeleteObjects(mock.Anything, mock.Anything, mock.Anything).
		Return(&s3.DeleteObjectsOutput{
			Errors: []types.Error{{
				Key:       aws.String("k"),
				VersionId: aws.String("v2"),
				Code:      aws.String("AccessDenied"),
				Message:   aws.String("Access Denied"),
			}},
		}, nil).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: InlineKeys("k")})

	assert.Equal(t, StageNone, report.StageFailed)
	assert.Equal(t, 1, report.VersionsRemoved)
	require.Len(t, report.ItemErrors, 1)
	assert.Equal(t, ItemError{Key: "k", VersionID: "v2", Code: "AccessDenied", Message: "Access Denied"}, report.ItemErrors[0])
}

func TestDelete_ManifestCleanupFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	store.EXPECT().GetObject(mock.Anything, mock.Anything, mock.Anything).
		Return(manifestBody(t, []string{"k"}), nil).Once()
	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("k"), mock.Anything).
		Return(versionsOutput("k", []string{"v1"}, nil), nil)
	store.EXPECT().DeleteObjects(mock.Anything, mock.Anything, mock.Anything).
		Return(&s3.DeleteObjectsOutput{}, nil).Once()
	store.EXPECT().DeleteObject(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"}).Once()

	report := svc.Delete(context.Background(), Request{BucketName: testBucket, Files: ManifestReference("m.json")})

	assert.Equal(t, StageNone, report.StageFailed)
	assert.Equal(t, 1, report.VersionsRemoved)
	assert.False(t, report.ManifestRemoved)
	assert.Error(t, report.ManifestErr)
}

func TestEnumerateVersions_Pagination(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	first := versionsOutput("k", []string{"v1", "v2"}, nil)
	first.IsTruncated = aws.Bool(true)
	first.NextKeyMarker = aws.String("k")
	first.NextVersionIdMarker = aws.String("v2")

	store.EXPECT().ListObjectVersions(mock.Anything, mock.MatchedBy(func(in *s3.ListObjectVersionsInput) bool {
		return in.KeyMarker == nil
	}), mock.Anything).Return(first, nil).Once()
	store.EXPECT().ListObjectVersions(mock.Anything, mock.MatchedBy(func(in *s3.ListObjectVersionsInput) bool {
		return aws.ToString(in.KeyMarker) == "k" && aws.ToString(in.VersionIdMarker) == "v2"
	}), mock.Anything).Return(versionsOutput("k", []string{"v3"}, []string{"m1"}), nil).Once()

	refs, err := svc.EnumerateVersions(context.Background(), testBucket, []string{"k"})
	require.NoError(t, err)
	assert.Equal(t, []VersionRef{
		{Key: "k", VersionID: "v1"},
		{Key: "k", VersionID: "v2"},
		{Key: "k", VersionID: "v3"},
		{Key: "k", VersionID: "m1"},
	}, refs)
}

func TestEnumerateVersions_IgnoresLongerKeysSharingPrefix(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	svc := newTestService(t, store)

	out := versionsOutput("logs/a.log", []string{"v1"}, nil)
	out.Versions = append(out.Versions, types.ObjectVersion{Key: aws.String("logs/a.log.gz"), VersionId: aws.String("gz1")})
	out.DeleteMarkers = append(out.DeleteMarkers, types.DeleteMarkerEntry{Key: aws.String("logs/a.log.1"), VersionId: aws.String("m1")})
	store.EXPECT().ListObjectVersions(mock.Anything, prefixIs("logs/a.log"), mock.Anything).Return(out, nil)

	refs, err := svc.EnumerateVersions(context.Background(), testBucket, []string{"logs/a.log"})
	require.NoError(t, err)
	assert.Equal(t, []VersionRef{{Key: "logs/a.log", VersionID: "v1"}}, refs)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)

	_, err := New(store, Config{})
	assert.Error(t, err)

	_, err = New(store, Config{TmpLogsBucket: "tmp", BatchSize: 1001})
	assert.Error(t, err)

	svc, err := New(store, Config{TmpLogsBucket: "tmp"})
	require.NoError(t, err)
	assert.Equal(t, 1000, svc.cfg.BatchSize)
}

func TestDelete_ReportCarriesRequestID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, mocks.NewMockObjectStore(t))
	ctx := reqctx.FromUUID(context.Background(), "req-42")

	report := svc.Delete(ctx, Request{BucketName: testBucket, Files: InlineKeys()})
	assert.Equal(t, "req-42", report.RequestID)
	assert.Equal(t, "noop", report.Outcome())
}
