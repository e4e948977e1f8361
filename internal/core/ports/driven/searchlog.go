package driven

import (
	"context"
	"time"
)

// SearchEvent records a single search interaction for analytics.
type SearchEvent struct {
	// ID uniquely identifies the event.
	ID string
	// Kind is the event class, e.g. "search" or "result_click".
	Kind string
	// Query is the query text at the time of the event.
	Query string
	// Context is the active search context.
	Context string
	// ResultCount is the number of results returned (search events).
	ResultCount int
	// ResultIdentity is the clicked result's identity (click events).
	ResultIdentity string
	// Position is the zero-based rank of the clicked result.
	Position int
	// OccurredAt is when the event happened.
	OccurredAt time.Time
}

// SearchLogStore records search and click events. Logging is best
// effort; callers treat append failures as non-fatal.
type SearchLogStore interface {
	// Append records an event.
	Append(ctx context.Context, event SearchEvent) error

	// Recent returns up to limit events, most recent first.
	Recent(ctx context.Context, limit int) ([]SearchEvent, error)
}
