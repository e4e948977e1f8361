package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

// Ensure SearchLogStore implements the interface.
var _ driven.SearchLogStore = (*SearchLogStore)(nil)

// maxLogEntries bounds the in-memory event log.
const maxLogEntries = 1000

// SearchLogStore is an in-memory implementation of
// driven.SearchLogStore. The log is bounded; the oldest events fall
// off once the cap is reached.
type SearchLogStore struct {
	mu     sync.RWMutex
	events []driven.SearchEvent
}

// NewSearchLogStore creates a new in-memory search log.
func NewSearchLogStore() *SearchLogStore {
	return &SearchLogStore{}
}

// Append records an event.
func (s *SearchLogStore) Append(_ context.Context, event driven.SearchEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > maxLogEntries {
		s.events = s.events[len(s.events)-maxLogEntries:]
	}
	return nil
}

// Recent returns up to limit events, most recent first.
func (s *SearchLogStore) Recent(_ context.Context, limit int) ([]driven.SearchEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]driven.SearchEvent, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
