package todo

// Reduce applies one action to the collection and returns a fresh slice.
// The input is never mutated; callers holding the old slice keep a valid
// unchanged snapshot. Unknown ids fall through to a copy of the input.
func Reduce(items []Item, action Action) []Item {
	switch a := action.(type) {
	case AddAction:
		next := make([]Item, 0, len(items)+1)
		next = append(next, items...)
		return append(next, Item{ID: a.ID, Text: a.Text, Completed: false})
	case ToggleAction:
		next := make([]Item, len(items))
		for i, item := range items {
			if item.ID == a.ID {
				item.Completed = !item.Completed
			}
			next[i] = item
		}
		return next
	case RemoveAction:
		next := make([]Item, 0, len(items))
		for _, item := range items {
			if item.ID != a.ID {
				next = append(next, item)
			}
		}
		return next
	case EditAction:
		next := make([]Item, len(items))
		for i, item := range items {
			if item.ID == a.ID {
				item.Text = a.Text
			}
			next[i] = item
		}
		return next
	case ClearCompletedAction:
		next := make([]Item, 0, len(items))
		for _, item := range items {
			if !item.Completed {
				next = append(next, item)
			}
		}
		return next
	case LoadAction:
		next := make([]Item, len(a.Items))
		copy(next, a.Items)
		return next
	default:
		next := make([]Item, len(items))
		copy(next, items)
		return next
	}
}
