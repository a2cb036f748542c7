// Package todo holds the todo-list engine: the item collection, the action
// union and its pure reduction, the owning store with best-effort
// persistence, the view filter, and the derived projection.
package todo

import (
	"encoding/json"
	"errors"
)

// Item is one todo entry. ID is assigned at creation and never changes.
type Item struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// itemSnapshot mirrors Item with pointer fields so a decoded element can be
// checked for missing keys.
type itemSnapshot struct {
	ID        *string `json:"id"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

var errInvalidSnapshot = errors.New("invalid todos snapshot")

// EncodeItems serializes the collection to the persisted JSON form.
func EncodeItems(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeItems parses a persisted snapshot. Every element must carry id, text
// and completed with the correct types; anything else invalidates the whole
// snapshot.
func DecodeItems(raw string) ([]Item, error) {
	var snaps []itemSnapshot
	if err := json.Unmarshal([]byte(raw), &snaps); err != nil {
		return nil, err
	}
	if snaps == nil {
		return nil, errInvalidSnapshot
	}
	items := make([]Item, 0, len(snaps))
	for _, snap := range snaps {
		if snap.ID == nil || snap.Text == nil || snap.Completed == nil {
			return nil, errInvalidSnapshot
		}
		items = append(items, Item{ID: *snap.ID, Text: *snap.Text, Completed: *snap.Completed})
	}
	return items, nil
}
