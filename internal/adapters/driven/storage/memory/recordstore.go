package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Records keep insertion order so provider output is stable.
type RecordStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]driven.Record
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[string]driven.Record)}
}

func recordKey(r driven.Record) string {
	return r.TableName + ":" + string(r.ID)
}

// Put inserts or replaces a record.
func (s *RecordStore) Put(_ context.Context, record driven.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey(record)
	if _, exists := s.records[key]; !exists {
		s.order = append(s.order, key)
	}
	s.records[key] = record
	return nil
}

// All returns every record, optionally limited to the given types.
func (s *RecordStore) All(_ context.Context, types []domain.ContentType) ([]driven.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[domain.ContentType]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	out := make([]driven.Record, 0, len(s.order))
	for _, key := range s.order {
		record := s.records[key]
		if len(wanted) > 0 {
			if _, ok := wanted[record.ContentType]; !ok {
				continue
			}
		}
		out = append(out, record)
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
