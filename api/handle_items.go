package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/treedo/treedo-backend/dto"
	"github.com/treedo/treedo-backend/usecases"
)

func handleCreateItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var form dto.CreateItemForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, adaptBindingError(err))
			return
		}

		usecase := uc.NewItemUsecase()
		list, err := usecase.CreateItem(ctx, dto.AdaptCreateItemAttributes(form))
		if presentError(ctx, c, err) {
			return
		}

		c.Redirect(http.StatusFound, list.ViewPath())
	}
}

func handleDeleteItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var form dto.DeleteItemForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, adaptBindingError(err))
			return
		}

		usecase := uc.NewItemUsecase()
		list, err := usecase.DeleteItemAndSubtree(ctx, dto.AdaptDeleteItemAttributes(form))
		if presentError(ctx, c, err) {
			return
		}

		c.Redirect(http.StatusFound, list.ViewPath())
	}
}
