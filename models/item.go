package models

import "time"

type Item struct {
	Id        string
	Text      string
	CreatedAt time.Time
}

// ItemSnapshot is the copy of an item embedded in a list, taken when the item was appended.
type ItemSnapshot struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

func (i Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		Id:   i.Id,
		Text: i.Text,
	}
}

type CreateItemAttributes struct {
	ListId string
	Text   string
}

type DeleteItemAttributes struct {
	ItemId           string
	ContainingListId string
}
