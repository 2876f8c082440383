package utils

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()

	assert.Same(t, slog.Default(), LoggerFromContext(ctx))
	assert.Equal(t, noop.Tracer{}, OpenTelemetryTracerFromContext(ctx))
}

func TestContextMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.DiscardHandler)
	tracer := noop.NewTracerProvider().Tracer("treedo-test")

	r := gin.New()
	r.Use(StoreLoggerInContextMiddleware(logger), StoreOpenTelemetryTracerInContextMiddleware(tracer))
	r.GET("/", func(c *gin.Context) {
		ctx := c.Request.Context()
		assert.Same(t, logger, LoggerFromContext(ctx))
		assert.Equal(t, tracer, OpenTelemetryTracerFromContext(ctx))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
