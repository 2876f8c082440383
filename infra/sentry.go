package infra

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

const sentryTracesSampleRate = 0.2

type SentryConfiguration struct {
	Dsn         string
	Environment string
	Release     string
}

// SetupSentry initializes the sentry client. An empty dsn leaves the client disabled.
func SetupSentry(conf SentryConfiguration) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:           conf.Dsn,
		EnableTracing: true,
		Release:       conf.Release,
		Environment:   conf.Environment,
		TracesSampler: sentryTracesSampler,
		BeforeSend:    groupByRootCause,
	})
	return errors.Wrap(err, "could not initialize sentry")
}

var unsampledTransactions = []string{"GET /liveness", "GET /metrics"}

func sentryTracesSampler(ctx sentry.SamplingContext) float64 {
	if ctx.Span != nil && slices.Contains(unsampledTransactions, ctx.Span.Name) {
		return 0
	}
	return sentryTracesSampleRate
}

// groupByRootCause names the reported exception after the innermost error, so that
// errors wrapped with varying context land in the same issue.
func groupByRootCause(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if event == nil || hint == nil || hint.OriginalException == nil || len(event.Exception) == 0 {
		return event
	}
	event.Exception[len(event.Exception)-1].Type = errors.UnwrapAll(hint.OriginalException).Error()
	return event
}
