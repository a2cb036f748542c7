package todo

// Visible returns the subsequence matching the filter, in collection order,
// as a fresh slice. Deterministic and idempotent; nothing is cached.
func Visible(items []Item, filter Filter) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if matchesFilter(filter, item.Completed) {
			visible = append(visible, item)
		}
	}
	return visible
}

func matchesFilter(filter Filter, completed bool) bool {
	switch filter {
	case FilterActive:
		return !completed
	case FilterCompleted:
		return completed
	default:
		return true
	}
}

// Count tallies the collection by completion state.
type Count struct {
	Active    int
	Completed int
}

func CountItems(items []Item) Count {
	var c Count
	for _, item := range items {
		if item.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
