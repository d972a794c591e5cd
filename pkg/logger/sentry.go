// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

// SentryHook forwards error-and-above events to Sentry. It is a no-op until
// sentry.Init has been called with a DSN.
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook returns a hook bound to hub, or to the current hub when hub is nil.
func NewSentryHook(hub *sentry.Hub) SentryHook {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return SentryHook{hub: hub}
}

func (h SentryHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if level < zerolog.ErrorLevel || h.hub == nil || h.hub.Client() == nil {
		return
	}
	h.hub.CaptureException(errors.New(msg))
}
