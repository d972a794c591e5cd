// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
)

func TestWithUUID(t *testing.T) {
	t.Parallel()

	ctx, id := WithUUID(context.Background())
	assert.Len(t, id, 36)
	assert.Equal(t, id, ID(ctx))

	// An attached id is reused.
	_, again := WithUUID(ctx)
	assert.Equal(t, id, again)
}

func TestWithUUID_LambdaRequestID(t *testing.T) {
	t.Parallel()

	lc := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-123"})
	ctx, id := WithUUID(lc)
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", ID(ctx))
}

func TestFromUUID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", ID(context.Background()))
	assert.Equal(t, "fixed", ID(FromUUID(context.Background(), "fixed")))
}
