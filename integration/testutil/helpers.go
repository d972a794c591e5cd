//go:build integration

// Package testutil provides shared utilities for integration tests.
package testutil

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is the default timeout for test operations
const DefaultTimeout = 2 * time.Minute

// GetEnv returns the environment variable value or a default
func GetEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// WithTimeout creates a context with the default timeout
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultTimeout)
}

// UniqueID returns a lowercase id usable as a bucket name or key segment.
func UniqueID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
