package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/treedo/treedo-backend/utils"
)

const DEFAULT_MAX_CONNECTIONS = 20

// NewPostgresConnectionPool opens the pool and waits for the database to answer. Only the
// startup ping is retried, queries issued later are not.
func NewPostgresConnectionPool(
	ctx context.Context,
	connectionString string,
	tracerProvider trace.TracerProvider,
	maxConnections int,
) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}
	cfg.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithTracerProvider(tracerProvider))
	if maxConnections > 0 {
		cfg.MaxConns = int32(maxConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	logger := utils.LoggerFromContext(ctx)
	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return pool.Ping(pingCtx)
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, fmt.Sprintf("database not reachable yet (attempt %d): %v", n+1, err))
		}),
	)
	if err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "unable to reach the database")
	}

	return pool, nil
}
