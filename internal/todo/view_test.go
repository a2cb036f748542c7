package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisiblePartitionsCollection(t *testing.T) {
	items := []Item{
		{ID: "a", Text: "one", Completed: false},
		{ID: "b", Text: "two", Completed: true},
		{ID: "c", Text: "three", Completed: false},
		{ID: "d", Text: "four", Completed: true},
		{ID: "e", Text: "five", Completed: true},
	}

	active := Visible(items, FilterActive)
	completed := Visible(items, FilterCompleted)
	all := Visible(items, FilterAll)

	counts := CountItems(items)
	assert.Equal(t, Count{Active: 2, Completed: 3}, counts)
	assert.Len(t, active, counts.Active)
	assert.Len(t, completed, counts.Completed)
	assert.Len(t, all, len(items))
	assert.Equal(t, len(items), len(active)+len(completed))

	seen := map[string]int{}
	for _, item := range active {
		assert.False(t, item.Completed)
		seen[item.ID]++
	}
	for _, item := range completed {
		assert.True(t, item.Completed)
		seen[item.ID]++
	}
	for _, item := range items {
		assert.Equal(t, 1, seen[item.ID], "item %q must appear in exactly one partition", item.ID)
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	items := []Item{
		{ID: "a", Completed: true},
		{ID: "b", Completed: false},
		{ID: "c", Completed: true},
	}
	completed := Visible(items, FilterCompleted)
	require.Len(t, completed, 2)
	assert.Equal(t, "a", completed[0].ID)
	assert.Equal(t, "c", completed[1].ID)
}

func TestVisibleAllReturnsFreshCopy(t *testing.T) {
	items := []Item{{ID: "a", Text: "one"}}
	all := Visible(items, FilterAll)
	require.Equal(t, items, all)

	all[0].Text = "scribbled"
	assert.Equal(t, "one", items[0].Text)
}

func TestCountItemsEmpty(t *testing.T) {
	assert.Equal(t, Count{}, CountItems(nil))
	assert.Equal(t, Count{}, CountItems([]Item{}))
}
