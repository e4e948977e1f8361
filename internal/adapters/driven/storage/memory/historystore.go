package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// History kept here lasts for the process lifetime only.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []string
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Load returns recent queries, most recent first.
func (s *HistoryStore) Load(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.entries...), nil
}

// Save replaces the stored history, truncating to the history limit.
func (s *HistoryStore) Save(_ context.Context, entries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(entries) > domain.HistoryLimit {
		entries = entries[:domain.HistoryLimit]
	}
	s.entries = append([]string(nil), entries...)
	return nil
}

// Clear removes all stored history.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
