package storage

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendsRoundTrip(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) KV
	}{
		{
			name: "sqlite",
			open: func(t *testing.T) KV {
				kv, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
				require.NoError(t, err)
				return kv
			},
		},
		{
			name: "badger",
			open: func(t *testing.T) KV {
				log := slog.New(slog.NewTextHandler(io.Discard, nil))
				kv, err := OpenBadger(filepath.Join(t.TempDir(), "badger"), log)
				require.NoError(t, err)
				return kv
			},
		},
		{
			name: "memory",
			open: func(t *testing.T) KV {
				return NewMemory()
			},
		},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			kv := backend.open(t)
			defer kv.Close()

			_, ok, err := kv.Get("todos")
			require.NoError(t, err)
			assert.False(t, ok, "unwritten key should report absent")

			require.NoError(t, kv.Set("todos", `[{"id":"a"}]`))
			value, ok, err := kv.Get("todos")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"id":"a"}]`, value)

			require.NoError(t, kv.Set("todos", `[]`))
			value, ok, err = kv.Get("todos")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[]`, value, "set should overwrite")

			_, ok, err = kv.Get("theme")
			require.NoError(t, err)
			assert.False(t, ok, "keys should be independent")
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("theme", "dark"))
	require.NoError(t, kv.Close())

	kv, err = OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	value, ok, err := kv.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")

	kv, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, kv.Set("theme", "light"))
	require.NoError(t, kv.Close())

	kv, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	defer kv.Close()

	value, ok, err := kv.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestOpenDispatch(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(BackendSQLite, filepath.Join(dir, "kv.db"), nil)
	require.NoError(t, err)
	require.IsType(t, &SQLite{}, kv)
	require.NoError(t, kv.Close())

	kv, err = Open(BackendMemory, "", nil)
	require.NoError(t, err)
	require.IsType(t, &Memory{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open("redis", "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	assert.Contains(t, err.Error(), "redis")
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	require.Error(t, err)
}

func TestMemoryFailureInjection(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set("todos", "[]"))

	kv.GetErr = errors.New("medium unavailable")
	_, _, err := kv.Get("todos")
	require.Error(t, err)

	kv.GetErr = nil
	kv.SetErr = errors.New("write refused")
	require.Error(t, kv.Set("todos", "[1]"))

	kv.SetErr = nil
	value, ok, err := kv.Get("todos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", value, "failed write must not alter stored value")
}
