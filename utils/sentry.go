package utils

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

// LogAndReportSentryError logs err with its stack trace and sends it to sentry. Canceled and
// timed out contexts are only logged as warnings.
func LogAndReportSentryError(ctx context.Context, err error) {
	logger := LoggerFromContext(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.WarnContext(ctx, "request ended before completion", "error", err.Error())
		return
	}

	logger.ErrorContext(ctx, err.Error(), "stack", fmt.Sprintf("%+v", err))

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
