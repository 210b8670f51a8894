package session

import (
	"context"
	"sync"
	"time"
)

// sweepEvery bounds how often the in-memory stores scan for expired entries.
const sweepEvery = time.Minute

type storedSession struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryStore keeps encoded sessions in process memory. Every save pushes
// the entry's expiry ttl into the future, matching RedisStore.
type MemoryStore struct {
	mu        sync.Mutex
	data      map[string]storedSession
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{data: make(map[string]storedSession), ttl: ttl, now: time.Now}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	now := m.now()
	m.sweep(now)
	entry, ok := m.data[id]
	if ok && !now.Before(entry.expiresAt) {
		delete(m.data, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return Decode(entry.raw)
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	raw, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	now := m.now()
	m.sweep(now)
	m.data[s.ID] = storedSession{raw: raw, expiresAt: now.Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	return nil
}

// Len reports how many sessions are held, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// sweep drops expired sessions. Callers hold m.mu.
func (m *MemoryStore) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < sweepEvery {
		return
	}
	m.lastSweep = now
	for id, entry := range m.data {
		if !now.Before(entry.expiresAt) {
			delete(m.data, id)
		}
	}
}
