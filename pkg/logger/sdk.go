// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"context"

	"github.com/aws/smithy-go/logging"
	"github.com/rs/zerolog"
)

// ZerologSDKAdapter routes AWS SDK client logs (retries, request dumps)
// into zerolog.
type ZerologSDKAdapter struct {
	logger *zerolog.Logger
}

// NewSDKAdapter wraps l. A nil l uses the global logger.
func NewSDKAdapter(l *zerolog.Logger) ZerologSDKAdapter {
	if l == nil {
		l = &globalLogger
	}
	return ZerologSDKAdapter{logger: l}
}

func (z ZerologSDKAdapter) Logf(classification logging.Classification, format string, v ...interface{}) {
	switch classification {
	case logging.Warn:
		z.logger.Warn().Str("component", "aws-sdk").Msgf(format, v...)
	case logging.Debug:
		z.logger.Debug().Str("component", "aws-sdk").Msgf(format, v...)
	default:
		z.logger.Info().Str("component", "aws-sdk").Msgf(format, v...)
	}
}

// WithContext lets the SDK pick up a request-scoped logger.
func (z ZerologSDKAdapter) WithContext(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && l != nil {
		return ZerologSDKAdapter{logger: l}
	}
	return z
}

var (
	_ logging.Logger        = ZerologSDKAdapter{}
	_ logging.ContextLogger = ZerologSDKAdapter{}
)
