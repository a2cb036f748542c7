// Package theme owns the light/dark display mode and its persistence.
package theme

import (
	"log/slog"
	"sync"

	"haru/internal/storage"
)

const themeKey = "theme"

// Mode is the display mode the presentation layer styles by.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Store owns the current mode. Changes are persisted best-effort under the
// same contract as the todo store: a failed write is logged and the
// in-memory change stands.
type Store struct {
	mu   sync.RWMutex
	mode Mode
	kv   storage.KV
	log  *slog.Logger
}

// NewStore reads the medium once and restores the persisted mode. Absence,
// a read failure or a value outside light/dark falls back to Light without
// touching the medium.
func NewStore(kv storage.KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{mode: Light, kv: kv, log: log}
	s.restore()
	return s
}

func (s *Store) restore() {
	raw, ok, err := s.kv.Get(themeKey)
	if err != nil {
		s.log.Error("read theme", "err", err)
		return
	}
	if !ok {
		return
	}
	switch Mode(raw) {
	case Light, Dark:
		s.mode = Mode(raw)
	default:
		s.log.Warn("ignoring invalid theme value", "value", raw)
	}
}

// Toggle flips light and dark and returns the new mode.
func (s *Store) Toggle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == Light {
		s.mode = Dark
	} else {
		s.mode = Light
	}
	if err := s.kv.Set(themeKey, string(s.mode)); err != nil {
		s.log.Error("persist theme", "err", err)
	}
	return s.mode
}

func (s *Store) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}
