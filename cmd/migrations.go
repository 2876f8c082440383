package cmd

import (
	"context"
	"fmt"

	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/utils"
)

func RunMigrations() error {
	pgConfig := newPgConfig()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", utils.LoggingFormatText))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(pgConfig)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
