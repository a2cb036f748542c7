package storage

import (
	"errors"
	"fmt"
	"log/slog"
)

// KV is the string key-value medium the stores persist through. Get reports
// ok=false when the key has never been written; err is reserved for medium
// failures.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open builds the KV named by backend. The logger is only used by backends
// that produce their own diagnostics; nil silences them.
func Open(backend, path string, log *slog.Logger) (KV, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendBadger:
		return OpenBadger(path, log)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
