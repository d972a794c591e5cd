// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

// Package metrics holds the Prometheus registry shared by every function.
// Functions are short-lived, so instead of being scraped the registry is
// pushed to a Pushgateway at the end of an invocation.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushTimeout = 5 * time.Second

var (
	// Global registry for function metrics
	globalRegistry = prometheus.NewRegistry()

	invocations = promauto.With(globalRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "logarchive_invocations_total",
		Help: "Function invocations by function and status",
	}, []string{"function", "status"})

	invocationDuration = promauto.With(globalRegistry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "logarchive_invocation_duration_seconds",
		Help:    "Duration of function invocations",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~1.7min
	}, []string{"function"})
)

// Registry returns the Prometheus registry for registering custom metrics.
func Registry() prometheus.Registerer {
	return globalRegistry
}

// Gatherer returns the registry as a gatherer, for tests and pushes.
func Gatherer() prometheus.Gatherer {
	return globalRegistry
}

// ObserveInvocation records one invocation of function.
func ObserveInvocation(function string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	invocations.WithLabelValues(function, status).Inc()
	invocationDuration.WithLabelValues(function).Observe(elapsed.Seconds())
}

// Pusher sends the registry to a Pushgateway.
type Pusher struct {
	url    string
	job    string
	client *http.Client
}

// NewPusher returns a Pusher, or nil when url is empty.
func NewPusher(url, job string) *Pusher {
	if url == "" {
		return nil
	}
	return &Pusher{
		url:    url,
		job:    job,
		client: &http.Client{Timeout: pushTimeout},
	}
}

// Push adds the current registry contents under the given grouping labels.
// A nil Pusher is a no-op.
func (p *Pusher) Push(ctx context.Context, grouping map[string]string) error {
	if p == nil {
		return nil
	}

	pusher := push.New(p.url, p.job).
		Gatherer(globalRegistry).
		Client(p.client)
	for name, value := range grouping {
		pusher = pusher.Grouping(name, value)
	}

	if err := pusher.AddContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", p.url, err)
	}
	return nil
}
