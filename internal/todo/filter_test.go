package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	for _, raw := range []string{"all", "active", "completed"} {
		f, err := ParseFilter(raw)
		require.NoError(t, err)
		assert.Equal(t, Filter(raw), f)
	}

	for _, raw := range []string{"", "done", "ALL", "show-all"} {
		_, err := ParseFilter(raw)
		require.Error(t, err, "ParseFilter(%q)", raw)
		assert.ErrorIs(t, err, ErrInvalidFilter)
	}
}

func TestFilterStoreDefaultsToAll(t *testing.T) {
	assert.Equal(t, FilterAll, NewFilterStore().Current())
}

func TestFilterStoreSet(t *testing.T) {
	filters := NewFilterStore()

	require.NoError(t, filters.Set(FilterCompleted))
	assert.Equal(t, FilterCompleted, filters.Current())

	err := filters.Set(Filter("urgent"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Contains(t, err.Error(), "urgent")
	assert.Equal(t, FilterCompleted, filters.Current(), "rejected set leaves the selector alone")
}
