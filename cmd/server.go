package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/treedo/treedo-backend/api"
	"github.com/treedo/treedo-backend/infra"
	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/usecases"
	"github.com/treedo/treedo-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             appName,
		AppVersion:          apiVersion,
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
		MaxFormSizeBytes:    int64(utils.GetEnv("MAX_FORM_SIZE_BYTES", api.DEFAULT_MAX_FORM_SIZE_BYTES)),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", false),
	}
	pgConfig := newPgConfig()
	serverConfig := newServerConfig()

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := serverConfig.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid server configuration", "error", err.Error())
		return err
	}
	if err := validateRequestLoggingLevel(apiConfig.RequestLoggingLevel); err != nil {
		logger.ErrorContext(ctx, "invalid server configuration", "error", err.Error())
		return err
	}

	if err := infra.SetupSentry(infra.SentryConfiguration{
		Dsn:         serverConfig.sentryDsn,
		Environment: apiConfig.Env,
		Release:     apiConfig.AppVersion,
	}); err != nil {
		logger.ErrorContext(ctx, "invalid sentry configuration", "error", err.Error())
		return err
	}
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(ctx, infra.TelemetryConfiguration{
		Enabled:         serverConfig.enableTracing,
		ApplicationName: apiConfig.AppName,
		SamplingRatio:   serverConfig.tracingSamplingRatio,
	}, apiConfig.AppVersion)
	if err != nil {
		// the server still runs, without traces
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetryRessources.Shutdown(shutdownCtx); err != nil {
			logger.WarnContext(ctx, "could not flush traces", "error", err.Error())
		}
	}()
	ctx = utils.StoreOpenTelemetryTracerInContext(ctx, telemetryRessources.Tracer)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(repositories.NewRepositories(pool),
		usecases.WithRootListTitle(serverConfig.rootListTitle),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port),
		slog.String("version", apiConfig.AppVersion))
	return serveUntilDone(ctx, server, notify.Done())
}

// serveUntilDone serves until done is closed, then shuts the server down. A server that
// stops on its own, like one that cannot bind its port, ends the wait with its error.
func serveUntilDone(ctx context.Context, server *http.Server, done <-chan struct{}) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		err = errors.Wrap(err, "Error while serving the app")
		utils.LogAndReportSentryError(ctx, err)
		return err
	case <-done:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		err = errors.Wrap(err, "Error while shutting down the server")
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	utils.LoggerFromContext(ctx).InfoContext(ctx, "server stopped")
	return nil
}
