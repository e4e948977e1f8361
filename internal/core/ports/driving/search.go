package driving

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// SearchService provides one-shot search to external actors.
type SearchService interface {
	// Search runs a single query against the provider and returns the
	// ranked response. Queries shorter than the configured minimum
	// return domain.ErrQueryTooShort.
	Search(ctx context.Context, query string, filters domain.SearchFilters) (*domain.SearchResponse, error)

	// Suggestions returns up to limit distinct result titles matching
	// the query, for type-ahead display.
	Suggestions(ctx context.Context, query string, limit int) ([]string, error)
}
