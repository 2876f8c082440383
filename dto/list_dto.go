package dto

import (
	"github.com/guregu/null/v5"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/pure_utils"
)

type ListItem struct {
	Id   string
	Text string
	// path of the item's own child list
	ViewPath string
}

// List is what the list page template renders.
type List struct {
	Id             string
	Title          string
	LinkingItemId  null.String
	IsRoot         bool
	ViewPath       string
	ParentViewPath string
	Items          []ListItem
}

func AdaptListItemDto(snapshot models.ItemSnapshot) ListItem {
	return ListItem{
		Id:       snapshot.Id,
		Text:     snapshot.Text,
		ViewPath: "/" + snapshot.Id,
	}
}

func AdaptListDto(list models.List, parentViewPath string) List {
	return List{
		Id:             list.Id,
		Title:          list.Title,
		LinkingItemId:  null.StringFromPtr(list.LinkingItemId),
		IsRoot:         list.IsRoot(),
		ViewPath:       list.ViewPath(),
		ParentViewPath: parentViewPath,
		Items:          pure_utils.Map(list.Items, AdaptListItemDto),
	}
}

type CreateItemForm struct {
	NewTitle string `form:"newTitle" binding:"required"`
	ListId   string `form:"listId" binding:"required,uuid"`
}

func AdaptCreateItemAttributes(form CreateItemForm) models.CreateItemAttributes {
	return models.CreateItemAttributes{
		ListId: form.ListId,
		Text:   form.NewTitle,
	}
}

type DeleteItemForm struct {
	ItemId string `form:"itemId" binding:"required,uuid"`
	// id of the list holding the item
	ListId string `form:"id" binding:"required,uuid"`
}

func AdaptDeleteItemAttributes(form DeleteItemForm) models.DeleteItemAttributes {
	return models.DeleteItemAttributes{
		ItemId:           form.ItemId,
		ContainingListId: form.ListId,
	}
}
