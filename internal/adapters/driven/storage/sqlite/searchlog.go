package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

// searchLogStore implements driven.SearchLogStore.
type searchLogStore struct {
	store *Store
}

var _ driven.SearchLogStore = (*searchLogStore)(nil)

// Append records an event.
func (l *searchLogStore) Append(ctx context.Context, event driven.SearchEvent) error {
	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO search_log
			(id, kind, query, context, result_count, result_identity, position, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, event.ID, event.Kind, event.Query, event.Context,
		event.ResultCount, event.ResultIdentity, event.Position,
		event.OccurredAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("appending search event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, most recent first.
func (l *searchLogStore) Recent(ctx context.Context, limit int) ([]driven.SearchEvent, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited.
	}

	rows, err := l.store.db.QueryContext(ctx, `
		SELECT id, kind, query, context, result_count, result_identity, position, occurred_at
		FROM search_log
		ORDER BY occurred_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search log: %w", err)
	}
	defer rows.Close()

	var events []driven.SearchEvent
	for rows.Next() {
		var event driven.SearchEvent
		var occurredAt string
		if err := rows.Scan(
			&event.ID, &event.Kind, &event.Query, &event.Context,
			&event.ResultCount, &event.ResultIdentity, &event.Position, &occurredAt,
		); err != nil {
			return nil, fmt.Errorf("scanning search log row: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, occurredAt); parseErr == nil {
			event.OccurredAt = ts
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search log rows: %w", err)
	}
	return events, nil
}
