package driving

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// ResultActionService provides actions on search results for external
// actors. This is used by TUI, CLI, and MCP adapters.
type ResultActionService interface {
	// Resolve returns the navigation path for a result. Total: every
	// result maps to a path, falling back to a search deep link.
	Resolve(result domain.SearchResult) string

	// Open resolves the result, records a click event, and navigates
	// to the path. position is the result's zero-based rank in the
	// list it was clicked from; query is the query that produced it.
	Open(ctx context.Context, result domain.SearchResult, position int, query string) error

	// Prefetch warms caches for the result's path ahead of an
	// expected visit.
	Prefetch(ctx context.Context, result domain.SearchResult) error
}
