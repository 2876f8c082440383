package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// LoggerFromContext returns the logger stored in the context, or the default slog logger
// when none was stored.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreOpenTelemetryTracerInContext(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, ContextKeyOpenTelemetryTracer, tracer)
}

// OpenTelemetryTracerFromContext returns the tracer stored in the context. Spans started
// without one are dropped.
func OpenTelemetryTracerFromContext(ctx context.Context) trace.Tracer {
	tracer, found := ctx.Value(ContextKeyOpenTelemetryTracer).(trace.Tracer)
	if !found {
		return noop.Tracer{}
	}
	return tracer
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return requestContextMiddleware(StoreLoggerInContext, logger)
}

func StoreOpenTelemetryTracerInContextMiddleware(tracer trace.Tracer) gin.HandlerFunc {
	return requestContextMiddleware(StoreOpenTelemetryTracerInContext, tracer)
}

func requestContextMiddleware[T any](store func(context.Context, T) context.Context, value T) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(store(c.Request.Context(), value))
	}
}
