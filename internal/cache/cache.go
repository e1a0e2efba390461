// Package cache provides TTL-gated persistence of raw price-history
// payloads, one entry per symbol. Freshness is a property of the read, not
// of the entry: the same file can be fresh for one caller and stale for
// another with a different TTL.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"StockLens/internal/model"
)

// SchemaVersion is stamped into every payload on write. Entries written by
// an incompatible build read back as a miss.
const SchemaVersion = 1

// Store is the cache abstraction handed to the analyzer; tests substitute
// an in-memory implementation.
type Store interface {
	// Get returns the payload for symbol if it was written less than ttl
	// ago. Missing, stale and corrupt entries are all an indistinguishable
	// miss.
	Get(symbol string, ttl time.Duration) (*model.PriceHistory, bool)
	// Put serializes the payload and replaces the stored entry whole.
	Put(symbol string, h *model.PriceHistory) error
}

// FileStore keeps one JSON file per symbol under Dir, with dots in the
// symbol replaced by underscores. There is no cross-process locking: two
// processes refreshing the same symbol race last-writer-wins, which is
// accepted. Stale files are ignored on read and overwritten on the next
// fetch, never deleted.
type FileStore struct {
	Dir string

	now func() time.Time
}

// NewFileStore creates the cache directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{Dir: dir, now: time.Now}, nil
}

func (s *FileStore) path(symbol string) string {
	return filepath.Join(s.Dir, strings.ReplaceAll(symbol, ".", "_")+".json")
}

// Get reports a fresh entry. Freshness is judged by file modification time:
// fresh iff now - mtime < ttl.
func (s *FileStore) Get(symbol string, ttl time.Duration) (*model.PriceHistory, bool) {
	path := s.path(symbol)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if s.now().Sub(info.ModTime()) >= ttl {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var h model.PriceHistory
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, false
	}
	if h.SchemaVersion != SchemaVersion || h.Symbol == "" {
		return nil, false
	}
	return &h, true
}

// Put writes the payload to a temporary file in the same directory and
// renames it over the target, so a concurrent reader never observes a
// partially written file.
func (s *FileStore) Put(symbol string, h *model.PriceHistory) error {
	entry := *h
	entry.SchemaVersion = SchemaVersion
	data, err := json.MarshalIndent(&entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, strings.ReplaceAll(symbol, ".", "_")+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(symbol)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
