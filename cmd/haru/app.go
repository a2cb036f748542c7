package main

import (
	"log/slog"
	"os"

	"haru/internal/config"
	"haru/internal/storage"
	"haru/internal/theme"
	"haru/internal/todo"
)

// app bundles the stores every command works through.
type app struct {
	cfg     config.Config
	kv      storage.KV
	todos   *todo.Store
	filters *todo.FilterStore
	themes  *theme.Store
}

func openApp() (*app, error) {
	path, err := config.ResolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	kv, err := storage.Open(cfg.Backend, cfg.DBPath, log)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		kv:      kv,
		todos:   todo.NewStore(kv, log),
		filters: todo.NewFilterStore(),
		themes:  theme.NewStore(kv, log),
	}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}
