package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/treedo/treedo-backend/dto"
	"github.com/treedo/treedo-backend/usecases"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewLivenessUsecase()
		if presentError(ctx, c, usecase.Liveness(ctx)) {
			return
		}

		c.JSON(http.StatusOK, dto.LivenessResponse{Mood: "Ready to tick boxes"})
	}
}
