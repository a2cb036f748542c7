package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeItemsNeverWritesNull(t *testing.T) {
	raw, err := EncodeItems(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeItemsAcceptsEmptyArray(t *testing.T) {
	items, err := DecodeItems("[]")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDecodeItemsIgnoresUnknownFields(t *testing.T) {
	items, err := DecodeItems(`[{"id":"a","text":"x","completed":false,"priority":3}]`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, Item{ID: "a", Text: "x", Completed: false}, items[0])
}
