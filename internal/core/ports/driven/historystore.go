package driven

import "context"

// HistoryStore persists recent queries across sessions. The in-memory
// adapter keeps history session-scoped; the sqlite adapter makes it
// durable. Entries are ordered most recent first and the store never
// holds more than domain.HistoryLimit of them.
type HistoryStore interface {
	// Load returns recent queries, most recent first.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the stored history with the given entries.
	Save(ctx context.Context, entries []string) error

	// Clear removes all stored history.
	Clear(ctx context.Context) error
}
