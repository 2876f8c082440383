package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/treedo/treedo-backend/dto"
	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/usecases"
)

const listTemplate = "home.tmpl"

func handleGetRootList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewListUsecase()
		list, created, err := usecase.GetOrCreateRootList(ctx)
		if presentError(ctx, c, err) {
			return
		}
		if created {
			c.Redirect(http.StatusFound, list.ViewPath())
			return
		}

		c.HTML(http.StatusOK, listTemplate, dto.AdaptListDto(list, "/"))
	}
}

type listByLinkingItemParams struct {
	ItemId string `uri:"item_id" binding:"required,uuid"`
}

func handleGetListByLinkingItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listByLinkingItemParams
		if err := c.ShouldBindUri(&params); err != nil {
			// no list can live at a path that is not an item id
			presentError(ctx, c, errors.Wrapf(models.NotFoundError, "no list at %s", c.Request.URL.Path))
			return
		}

		usecase := uc.NewListUsecase()
		list, err := usecase.GetListByLinkingItem(ctx, params.ItemId)
		if presentError(ctx, c, err) {
			return
		}

		c.HTML(http.StatusOK, listTemplate, dto.AdaptListDto(list, usecase.GetParentViewPath(ctx, list)))
	}
}
