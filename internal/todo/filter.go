package todo

import (
	"errors"
	"fmt"
	"sync"
)

// Filter selects which items the view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var ErrInvalidFilter = errors.New("invalid filter")

// ParseFilter validates a raw selector string, e.g. from a flag or config.
func ParseFilter(raw string) (Filter, error) {
	f := Filter(raw)
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
}

// FilterStore owns the current view selector. It is never persisted; every
// fresh store starts at FilterAll.
type FilterStore struct {
	mu      sync.RWMutex
	current Filter
}

func NewFilterStore() *FilterStore {
	return &FilterStore{current: FilterAll}
}

// Set replaces the selector. A value outside the three filters is a caller
// bug and is rejected, never coerced.
func (f *FilterStore) Set(filter Filter) error {
	switch filter {
	case FilterAll, FilterActive, FilterCompleted:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	f.mu.Lock()
	f.current = filter
	f.mu.Unlock()
	return nil
}

func (f *FilterStore) Current() Filter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}
