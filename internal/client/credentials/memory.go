package credentials

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend keeps entries in process memory. It is the default backend
// and forgets the session when the process exits.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]memoryEntry), now: time.Now}
}

// NewMemoryStore is shorthand for a KVStore over a fresh MemoryBackend.
func NewMemoryStore(opts ...Option) *KVStore {
	return NewKVStore(NewMemoryBackend(), opts...)
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		return nil, nil
	}
	return append([]byte(nil), e.value...), nil
}

func (m *MemoryBackend) SetMany(_ context.Context, entries ...Entry) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		me := memoryEntry{value: append([]byte(nil), e.Value...)}
		if e.TTL > 0 {
			me.expiresAt = now.Add(e.TTL)
		}
		m.entries[e.Key] = me
	}
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}
