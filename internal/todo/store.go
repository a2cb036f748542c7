package todo

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"haru/internal/storage"
)

const todosKey = "todos"

// Store owns the authoritative collection. Mutations go through Reduce and
// are followed by a best-effort persist: a failed write is logged and the
// in-memory change stands.
type Store struct {
	mu    sync.RWMutex
	items []Item
	kv    storage.KV
	log   *slog.Logger
}

// NewStore reads the persistence medium once and restores any valid
// snapshot. An absent, unreadable or invalid snapshot falls back to an
// empty collection without touching the medium.
func NewStore(kv storage.KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{items: []Item{}, kv: kv, log: log}
	s.restore()
	return s
}

func (s *Store) restore() {
	raw, ok, err := s.kv.Get(todosKey)
	if err != nil {
		s.log.Error("read todos snapshot", "err", err)
		return
	}
	if !ok {
		return
	}
	items, err := DecodeItems(raw)
	if err != nil {
		s.log.Warn("ignoring invalid todos snapshot", "err", err)
		return
	}
	s.Load(items)
}

// Add appends a new item with the trimmed text and a fresh id. Text that
// trims to empty is a silent no-op.
func (s *Store) Add(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Reduce(s.items, AddAction{ID: uuid.NewString(), Text: text})
	s.persist()
	return s.items[len(s.items)-1], true
}

// Toggle flips the completed flag on the matching item. It reports whether
// a match was found; no match is a no-op.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.items, id) < 0 {
		return false
	}
	s.items = Reduce(s.items, ToggleAction{ID: id})
	s.persist()
	return true
}

// Remove deletes the matching item; no match is a no-op.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.items, id) < 0 {
		return false
	}
	s.items = Reduce(s.items, RemoveAction{ID: id})
	s.persist()
	return true
}

// Edit replaces the matching item's text with the trimmed value. Text that
// trims to empty discards the edit; id and completed are never touched.
func (s *Store) Edit(id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.items, id) < 0 {
		return false
	}
	s.items = Reduce(s.items, EditAction{ID: id, Text: text})
	s.persist()
	return true
}

// ClearCompleted removes every completed item, preserving the order of the
// rest, and returns how many were removed.
func (s *Store) ClearCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.items)
	s.items = Reduce(s.items, ClearCompletedAction{})
	removed := before - len(s.items)
	if removed > 0 {
		s.persist()
	}
	return removed
}

// Load unconditionally replaces the collection and persists the result.
func (s *Store) Load(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Reduce(s.items, LoadAction{Items: items})
	s.persist()
}

// Items returns a copy of the current collection in display order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.items, id)
	if i < 0 {
		return Item{}, false
	}
	return s.items[i], true
}

func (s *Store) persist() {
	raw, err := EncodeItems(s.items)
	if err != nil {
		s.log.Error("encode todos", "err", err)
		return
	}
	if err := s.kv.Set(todosKey, raw); err != nil {
		s.log.Error("persist todos", "err", err)
	}
}

func indexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
