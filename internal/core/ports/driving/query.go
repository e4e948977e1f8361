package driving

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// QueryUpdate is the view model a query controller pushes to its host
// after every state change. Fields describe the whole current state,
// not a delta.
type QueryUpdate struct {
	// State is the controller state at the time of the update.
	State domain.QueryState

	// Response is the latest search response, nil until the first
	// search completes or after the query drops below the minimum.
	Response *domain.SearchResponse

	// Suggestions are type-ahead titles for the current query.
	Suggestions []string

	// Searching is true while a search is in flight.
	Searching bool

	// Err is the most recent search error, cleared on the next
	// successful search.
	Err error
}

// QueryController owns live search state for an interactive host. It
// debounces keystrokes, discards stale responses, and maintains
// history. Methods are safe for concurrent use. All delivery happens
// through the update callback registered at construction.
type QueryController interface {
	// SetQuery updates the query text. A search is scheduled after the
	// debounce delay once the query reaches the minimum length;
	// shorter queries clear results immediately.
	SetQuery(query string)

	// SearchNow runs the current query immediately, bypassing the
	// debounce. Used for explicit submission (Enter).
	SearchNow()

	// SetContentTypes replaces the active type filter and reruns the
	// current query. Empty means all types.
	SetContentTypes(types []domain.ContentType)

	// SetContext switches the search context and reruns the current
	// query. Invalid contexts return domain.ErrInvalidInput.
	SetContext(searchContext domain.SearchContext) error

	// History returns recent queries, most recent first.
	History() []string

	// ClearHistory empties the history, including any persistent copy.
	ClearHistory(ctx context.Context) error

	// State returns a snapshot of the current controller state.
	State() domain.QueryState

	// Close cancels pending work. The controller delivers no updates
	// after Close returns.
	Close() error
}
