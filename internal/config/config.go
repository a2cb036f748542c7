package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"haru/internal/storage"
	"haru/internal/todo"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "haru.db"

	appDirName = "haru"
)

type Keymap struct {
	Quit        string `toml:"quit"`
	Add         string `toml:"add"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	Toggle      string `toml:"toggle"`
	Delete      string `toml:"delete"`
	Edit        string `toml:"edit"`
	Confirm     string `toml:"confirm"`
	Cancel      string `toml:"cancel"`
	CycleFilter string `toml:"cycle_filter"`
	ClearDone   string `toml:"clear_done"`
	Theme       string `toml:"theme"`
}

type Config struct {
	Backend       string `toml:"backend"`
	DBPath        string `toml:"db_path"`
	DefaultFilter string `toml:"default_filter"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns the config file location under the user config
// dir, creating the haru directory if needed.
func ResolveConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

func LoadOrCreate(path string) (Config, error) {
	dir := filepath.Dir(path)
	cfg := defaultConfig(dir)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath(dir, cfg.Backend)
	}
	switch cfg.Backend {
	case storage.BackendSQLite, storage.BackendBadger, storage.BackendMemory:
	default:
		return cfg, fmt.Errorf("backend: %w: %q", storage.ErrUnknownBackend, cfg.Backend)
	}
	if _, err := todo.ParseFilter(cfg.DefaultFilter); err != nil {
		return cfg, fmt.Errorf("default_filter: %w", err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		Backend:       storage.BackendSQLite,
		DBPath:        defaultDBPath(dir, storage.BackendSQLite),
		DefaultFilter: string(todo.FilterAll),
		Keys: Keymap{
			Quit:        "q",
			Add:         "a",
			Up:          "k",
			Down:        "j",
			Toggle:      " ",
			Delete:      "d",
			Edit:        "e",
			Confirm:     "enter",
			Cancel:      "esc",
			CycleFilter: "f",
			ClearDone:   "c",
			Theme:       "t",
		},
	}
}

func defaultDBPath(dir, backend string) string {
	if backend == storage.BackendBadger {
		return filepath.Join(dir, "badger")
	}
	return filepath.Join(dir, DefaultDBName)
}
