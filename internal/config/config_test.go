package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haru/internal/storage"
	"haru/internal/todo"
)

func TestLoadOrCreateWritesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, storage.BackendSQLite, cfg.Backend)
	assert.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
	assert.Equal(t, "all", cfg.DefaultFilter)
	assert.Equal(t, "q", cfg.Keys.Quit)

	_, err = os.Stat(path)
	require.NoError(t, err, "first load should write the default file")

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again, "written defaults should round-trip")
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
backend = "badger"
db_path = "/tmp/haru-test/badger"
default_filter = "completed"

[keys]
quit = "x"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, storage.BackendBadger, cfg.Backend)
	assert.Equal(t, "/tmp/haru-test/badger", cfg.DBPath)
	assert.Equal(t, "completed", cfg.DefaultFilter)
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "a", cfg.Keys.Add, "unset keys keep their defaults")
}

func TestLoadOrCreateFillsEmptyDBPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"badger\"\ndefault_filter = \"all\"\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "badger"), cfg.DBPath)
}

func TestLoadOrCreateRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"redis\"\ndefault_filter = \"all\"\n"), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}

func TestLoadOrCreateRejectsUnknownFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"sqlite\"\ndefault_filter = \"urgent\"\n"), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, todo.ErrInvalidFilter)
}

func TestLoadOrCreateRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = [unclosed"), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	path, err := ResolveConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "haru", DefaultConfigFileName), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
