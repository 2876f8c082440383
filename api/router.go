package api

import (
	"context"
	"html/template"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/treedo/treedo-backend/api/middleware"
	"github.com/treedo/treedo-backend/infra"
	"github.com/treedo/treedo-backend/utils"
)

func InitRouterMiddlewares(
	ctx context.Context,
	conf Configuration,
	telemetryRessources infra.TelemetryRessources,
) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.NewLogging(logger,
		middleware.WithRequestLoggingLevel(conf.RequestLoggingLevel),
		middleware.WithIgnorePath([]string{"/liveness", "/metrics"}),
	))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(otelgin.Middleware(
		conf.AppName,
		otelgin.WithTracerProvider(telemetryRessources.TracerProvider),
		otelgin.WithPropagators(telemetryRessources.TextMapPropagator),
	))
	r.Use(utils.StoreOpenTelemetryTracerInContextMiddleware(telemetryRessources.Tracer))

	r.SetHTMLTemplate(template.Must(parseTemplates()))

	return r
}
