package dbmodels

import (
	"time"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/utils"
)

type DBItem struct {
	Id        string    `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_ITEMS = "items"

var SelectItemColumn = utils.ColumnList[DBItem]()

func AdaptItem(db DBItem) (models.Item, error) {
	return models.Item{
		Id:        db.Id,
		Text:      db.Text,
		CreatedAt: db.CreatedAt,
	}, nil
}
