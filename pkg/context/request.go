// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package context carries the invocation request id.
package context

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

type RequestID struct{}

// WithUUID returns c carrying a request id and the id itself. An id already
// attached wins, then the Lambda request id, then a new UUID.
func WithUUID(c context.Context) (context.Context, string) {
	if id, ok := c.Value(RequestID{}).(string); ok && id != "" {
		return c, id
	}
	if lc, ok := lambdacontext.FromContext(c); ok && lc.AwsRequestID != "" {
		return FromUUID(c, lc.AwsRequestID), lc.AwsRequestID
	}
	newID := uuid.New().String()
	return FromUUID(c, newID), newID
}

func FromUUID(c context.Context, reqID string) context.Context {
	return context.WithValue(c, RequestID{}, reqID)
}

// ID returns the request id carried by c, or "".
func ID(c context.Context) string {
	id, _ := c.Value(RequestID{}).(string)
	return id
}
