package cache

import (
	"encoding/json"
	"sync"
	"time"

	"StockLens/internal/model"
)

// MemoryStore is a map-backed Store for tests and embedding. Payloads are
// serialized on Put and decoded on Get so round-trip semantics match the
// file store exactly.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	now func() time.Time
}

type memoryEntry struct {
	payload   []byte
	writtenAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(symbol string, ttl time.Duration) (*model.PriceHistory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[symbol]
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.writtenAt) >= ttl {
		return nil, false
	}
	var h model.PriceHistory
	if err := json.Unmarshal(entry.payload, &h); err != nil {
		return nil, false
	}
	if h.SchemaVersion != SchemaVersion {
		return nil, false
	}
	return &h, true
}

func (s *MemoryStore) Put(symbol string, h *model.PriceHistory) error {
	entry := *h
	entry.SchemaVersion = SchemaVersion
	data, err := json.Marshal(&entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[symbol] = memoryEntry{payload: data, writtenAt: s.now()}
	return nil
}
