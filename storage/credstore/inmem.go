package credstore

import (
	"sync"

	"github.com/verilearn/verilearn/core/session"
)

// Mem is an in-memory session.Keeper for tests.
type Mem struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ session.Keeper = (*Mem)(nil)

func NewMem() *Mem {
	return &Mem{entries: make(map[string]string)}
}

func (m *Mem) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *Mem) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *Mem) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

// Len reports how many entries are held; test helper.
func (m *Mem) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
