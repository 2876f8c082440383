package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	_ = c.Error(err)

	logger := utils.LoggerFromContext(ctx)
	switch {
	case errors.Is(err, models.BadParameterError):
		logger.InfoContext(ctx, fmt.Sprintf("BadParameterError: %v", err))
		c.String(http.StatusBadRequest, err.Error())

	case errors.Is(err, models.NotFoundError):
		logger.InfoContext(ctx, fmt.Sprintf("NotFoundError: %v", err))
		c.String(http.StatusNotFound, err.Error())

	case errors.Is(err, models.ConflictError):
		logger.InfoContext(ctx, fmt.Sprintf("ConflictError: %v", err))
		c.String(http.StatusConflict, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(ctx, fmt.Sprintf("Deadline exceeded: %v", err))
		c.String(http.StatusRequestTimeout, "Request timeout")

	default:
		utils.LogAndReportSentryError(ctx, err)
		c.String(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
	return true
}
