package state

import "sync"

// Compile-time interface check.
var _ Store = (*Memory)(nil)

// Memory is the in-process Store backing. State lives for the process
// lifetime only; a restart returns every user to the idle flow.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates an empty in-memory state store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

// Get implements Store.
func (m *Memory) Get(userID string) (Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[userID]
	return r, ok, nil
}

// Set implements Store.
func (m *Memory) Set(userID string, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[userID] = r
	return nil
}

// Clear implements Store.
func (m *Memory) Clear(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, userID)
	return nil
}

// Close implements Store. No-op for the in-memory backing.
func (m *Memory) Close() error {
	return nil
}
