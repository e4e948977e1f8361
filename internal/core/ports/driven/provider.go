package driven

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// SearchProvider is the external search-fetch collaborator. The
// platform's ranked search lives behind this port; the pipeline never
// performs network calls itself and surfaces provider errors verbatim
// without retrying or classifying them.
type SearchProvider interface {
	// Search executes a query with the given filters and returns a
	// ranked response. An empty result set is a normal response, not
	// an error.
	Search(ctx context.Context, query string, filters domain.SearchFilters) (*domain.SearchResponse, error)
}
