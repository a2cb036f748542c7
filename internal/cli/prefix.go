package cli

import (
	"fmt"
	"strings"

	"haru/internal/todo"
)

// MatchItem resolves an id prefix to a unique item. An exact id match wins;
// otherwise the prefix must select exactly one item.
func MatchItem(prefix string, items []todo.Item) (todo.Item, error) {
	for _, item := range items {
		if item.ID == prefix {
			return item, nil
		}
	}

	var matches []todo.Item
	for _, item := range items {
		if strings.HasPrefix(item.ID, prefix) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return todo.Item{}, fmt.Errorf("no item matches id %q", prefix)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = ShortID(m.ID)
		}
		return todo.Item{}, fmt.Errorf("ambiguous id %q matches: %s", prefix, strings.Join(ids, ", "))
	}
}

// ShortID returns the leading segment of a uuid, enough to identify an item
// in list output.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
