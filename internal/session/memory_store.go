package session

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore menyimpan record JSON di memori. Dipakai untuk mode dev tanpa
// redis dan sebagai fake di unit test.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string][]byte)}
}

func (m *memoryStore) Restore(ctx context.Context, sid string) (*Session, error) {
	m.mu.RLock()
	raw, ok := m.records[sid]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || !s.Valid() {
		m.mu.Lock()
		delete(m.records, sid)
		m.mu.Unlock()
		return nil, nil
	}
	return &s, nil
}

func (m *memoryStore) Persist(ctx context.Context, sid string, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.records[sid] = raw
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Clear(ctx context.Context, sid string) error {
	m.mu.Lock()
	delete(m.records, sid)
	m.mu.Unlock()
	return nil
}

// Seed menulis payload mentah tanpa validasi. Hanya untuk test record corrupt.
func Seed(s Store, sid string, raw []byte) {
	if ms, ok := s.(*memoryStore); ok {
		ms.mu.Lock()
		ms.records[sid] = raw
		ms.mu.Unlock()
	}
}
