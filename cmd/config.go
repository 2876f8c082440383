package cmd

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/treedo/treedo-backend/api/middleware"
	"github.com/treedo/treedo-backend/infra"
	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/utils"
)

const appName = "treedo-backend"

// overridden at build time with -ldflags "-X github.com/treedo/treedo-backend/cmd.apiVersion=..."
var apiVersion = "dev"

type ServerConfig struct {
	loggingFormat string
	sentryDsn     string
	rootListTitle string

	enableTracing        bool
	tracingSamplingRatio float64
}

func (config ServerConfig) Validate() error {
	if !slices.Contains([]string{utils.LoggingFormatText, utils.LoggingFormatJson, utils.LoggingFormatGcp},
		config.loggingFormat) {
		return errors.Newf("LOGGING_FORMAT must be one of text, json or gcp, got %q", config.loggingFormat)
	}
	if config.rootListTitle == "" {
		return errors.New("ROOT_LIST_TITLE must not be empty")
	}
	if config.tracingSamplingRatio < 0 || config.tracingSamplingRatio > 1 {
		return errors.Newf("TRACING_SAMPLING_RATIO must be between 0 and 1, got %v", config.tracingSamplingRatio)
	}
	return nil
}

func validateRequestLoggingLevel(level string) error {
	if !slices.Contains([]string{
		middleware.RequestLoggingLevelAll,
		middleware.RequestLoggingLevelErrors,
		middleware.RequestLoggingLevelNone,
	}, level) {
		return errors.Newf("REQUEST_LOGGING_LEVEL must be one of all, errors or none, got %q", level)
	}
	return nil
}

func newPgConfig() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:    utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:            utils.GetEnv("PG_DATABASE", "treedo"),
		DbConnectWithSocket: utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
		Hostname:            utils.GetEnv("PG_HOSTNAME", ""),
		Password:            utils.GetEnv("PG_PASSWORD", ""),
		Port:                utils.GetEnv("PG_PORT", "5432"),
		User:                utils.GetEnv("PG_USER", ""),
		MaxPoolConnections:  utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:             utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func newServerConfig() ServerConfig {
	return ServerConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", utils.LoggingFormatText),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		rootListTitle: utils.GetEnv("ROOT_LIST_TITLE", models.DEFAULT_ROOT_LIST_TITLE),

		enableTracing:        utils.GetEnv("ENABLE_TRACING", false),
		tracingSamplingRatio: utils.GetEnv("TRACING_SAMPLING_RATIO", infra.DEFAULT_SAMPLING_RATIO),
	}
}
