// Package local provides a SearchProvider over the local record
// corpus. It ranks records with the same matching and scoring rules
// the rest of the pipeline uses, which makes it the provider of choice
// for offline use and demos.
package local

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// Provider searches the record store.
type Provider struct {
	records driven.RecordStore
}

// NewProvider creates a provider over the given record store.
func NewProvider(records driven.RecordStore) *Provider {
	return &Provider{records: records}
}

// Search scans every eligible record for the query terms and returns
// matches ranked by score, best first.
func (p *Provider) Search(
	ctx context.Context, query string, filters domain.SearchFilters,
) (*domain.SearchResponse, error) {
	start := time.Now()

	types := filters.ContentTypes
	if len(types) == 0 {
		types = contextTypes(filters.Context)
	}

	records, err := p.records.All(ctx, types)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	logger.Debug("Scanning %d records for %q", len(records), query)

	var results []domain.SearchResult
	for _, record := range records {
		text := record.Title + "\n" + record.Body
		spans := domain.Scan(text, query)
		if len(spans) == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			TableName:      record.TableName,
			RecordID:       record.ID,
			ContentType:    record.ContentType,
			Title:          record.Title,
			Snippet:        record.Body,
			Rank:           domain.Score(text, query, spans),
			CreatedAt:      record.CreatedAt,
			AdditionalData: record.Fields,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank > results[j].Rank
	})

	stats := domain.SearchStats{
		TotalResults: len(results),
		SearchTime:   time.Since(start).Seconds(),
	}
	distinct := make(map[domain.ContentType]struct{})
	for _, r := range results {
		distinct[r.ContentType] = struct{}{}
		if r.Rank > stats.MaxRank {
			stats.MaxRank = r.Rank
		}
	}
	stats.ContentTypes = len(distinct)

	if filters.Limit > 0 && len(results) > filters.Limit {
		results = results[:filters.Limit]
	}

	return &domain.SearchResponse{
		Query:   query,
		Results: results,
		Stats:   stats,
		Context: filters.Context,
	}, nil
}

// contextTypes maps a search context to the content types it covers.
// General means no restriction.
func contextTypes(searchContext domain.SearchContext) []domain.ContentType {
	var category domain.Category
	switch searchContext {
	case domain.ContextLearning:
		category = domain.CategoryLearning
	case domain.ContextTeaching:
		category = domain.CategoryTeaching
	default:
		return nil
	}

	var types []domain.ContentType
	for _, t := range domain.AllContentTypes() {
		if t.Info().Category == category {
			types = append(types, t)
		}
	}
	return types
}
