package referral

import (
	"context"
	"sync"
)

// MemStore keeps slots in process memory. Used in tests and as the fallback
// when Redis is not configured (slots then live until restart only).
type MemStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string]string)}
}

func (m *MemStore) Get(ctx context.Context, visitorID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	code, ok := m.slots[visitorID]
	if !ok {
		return "", ErrNoCode
	}
	return code, nil
}

func (m *MemStore) Set(ctx context.Context, visitorID, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[visitorID] = code
	return nil
}

func (m *MemStore) Clear(ctx context.Context, visitorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, visitorID)
	return nil
}
