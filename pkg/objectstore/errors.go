// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package objectstore

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Sentinel errors for the storage failures callers branch on.
var (
	ErrNoSuchKey      = errors.New("objectstore: no such key")
	ErrNoSuchBucket   = errors.New("objectstore: no such bucket")
	ErrAccessDenied   = errors.New("objectstore: access denied")
	ErrThrottled      = errors.New("objectstore: request throttled")
	ErrInvalidRequest = errors.New("objectstore: invalid request")
)

// Error records the storage operation, bucket and key behind a failure.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Bucket != "" && e.Key != "":
		return fmt.Sprintf("s3.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	case e.Bucket != "":
		return fmt.Sprintf("s3.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	default:
		return fmt.Sprintf("s3.%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel that the wrapped API error maps to.
func (e *Error) Is(target error) bool {
	return target != nil && classify(e.Op, e.Err) == target
}

// Wrap returns nil for a nil err, otherwise an *Error carrying the context.
func Wrap(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Bucket: bucket, Key: key, Err: err}
}

// classify maps S3 API error codes onto sentinels. Unknown codes map to nil.
// HEAD requests carry no body, so a bare NotFound is resolved by operation.
func classify(op string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	switch apiErr.ErrorCode() {
	case "NotFound":
		if op == "HeadBucket" {
			return ErrNoSuchBucket
		}
		return ErrNoSuchKey
	case "NoSuchKey":
		return ErrNoSuchKey
	case "NoSuchBucket":
		return ErrNoSuchBucket
	case "AccessDenied", "Forbidden", "AllAccessDisabled":
		return ErrAccessDenied
	case "SlowDown", "Throttling", "ThrottlingException", "RequestLimitExceeded", "TooManyRequests":
		return ErrThrottled
	case "InvalidArgument", "InvalidRequest", "MalformedXML":
		return ErrInvalidRequest
	}
	return nil
}

// Code returns the S3 error code carried by err, or "" when there is none.
func Code(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
