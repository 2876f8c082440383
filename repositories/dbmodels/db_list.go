package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/utils"
)

type DBList struct {
	Id            string    `db:"id"`
	LinkingItemId *string   `db:"linking_item_id"`
	Title         string    `db:"title"`
	Items         []byte    `db:"items"`
	CreatedAt     time.Time `db:"created_at"`
}

// DBItemSnapshot is the shape of one element of the lists.items jsonb array.
type DBItemSnapshot struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

const TABLE_LISTS = "lists"

var SelectListColumn = utils.ColumnList[DBList]()

func AdaptList(db DBList) (models.List, error) {
	snapshots := []DBItemSnapshot{}
	if len(db.Items) > 0 {
		if err := json.Unmarshal(db.Items, &snapshots); err != nil {
			return models.List{}, errors.Wrapf(err, "invalid items document on list %s", db.Id)
		}
	}

	items := make([]models.ItemSnapshot, len(snapshots))
	for i, s := range snapshots {
		items[i] = models.ItemSnapshot{Id: s.Id, Text: s.Text}
	}

	return models.List{
		Id:            db.Id,
		LinkingItemId: db.LinkingItemId,
		Title:         db.Title,
		Items:         items,
		CreatedAt:     db.CreatedAt,
	}, nil
}

// MarshalItemSnapshots renders snapshots as a jsonb array document.
func MarshalItemSnapshots(snapshots ...models.ItemSnapshot) (string, error) {
	dbSnapshots := make([]DBItemSnapshot, len(snapshots))
	for i, s := range snapshots {
		dbSnapshots[i] = DBItemSnapshot{Id: s.Id, Text: s.Text}
	}
	raw, err := json.Marshal(dbSnapshots)
	if err != nil {
		return "", errors.Wrap(err, "could not marshal item snapshots")
	}
	return string(raw), nil
}
