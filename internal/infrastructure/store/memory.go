package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore keeps entries in-process. It is the default backend and
// the substrate for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
	log     *zap.Logger
}

func NewMemoryStore(log *zap.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]json.RawMessage),
		log:     log,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest any) bool {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Error("error reading from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("error writing to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Remove(_ context.Context, key string) bool {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return true
}

// Inject writes a raw payload without going through the JSON codec,
// letting tests exercise the corrupt-payload path.
func (s *MemoryStore) Inject(key string, raw []byte) {
	s.mu.Lock()
	s.entries[key] = json.RawMessage(raw)
	s.mu.Unlock()
}
