package storage

import "sync"

// Memory is a map-backed KV for tests and ephemeral runs. GetErr and SetErr,
// when non-nil, are returned by every Get/Set so failure paths can be
// exercised.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	GetErr error
	SetErr error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
