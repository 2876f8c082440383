package models

import "time"

const DEFAULT_ROOT_LIST_TITLE = "To-Do List"

// List is an ordered collection of item snapshots. Every list except the root is the
// child list of the item it is linked to.
type List struct {
	Id            string
	LinkingItemId *string
	Title         string
	Items         []ItemSnapshot
	CreatedAt     time.Time
}

func (l List) IsRoot() bool {
	return l.LinkingItemId == nil
}

// ViewPath is the path the list is rendered at: "/" for the root list, "/<linking item id>"
// for any other list.
func (l List) ViewPath() string {
	if l.IsRoot() {
		return "/"
	}
	return "/" + *l.LinkingItemId
}

func (l List) ContainsItem(itemId string) bool {
	for _, snapshot := range l.Items {
		if snapshot.Id == itemId {
			return true
		}
	}
	return false
}

type CreateListAttributes struct {
	LinkingItemId *string
	Title         string
}
