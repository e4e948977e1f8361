package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

// Event kinds recorded in the search log.
const (
	EventKindSearch = "search"
	EventKindClick  = "result_click"
)

// AnalyticsService records search and click events. All recording is
// best effort; callers log failures and continue.
type AnalyticsService struct {
	store driven.SearchLogStore
	now   func() time.Time
}

// NewAnalyticsService creates an analytics service over the given log
// store.
func NewAnalyticsService(store driven.SearchLogStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// RecordSearch logs an executed search and its result count.
func (a *AnalyticsService) RecordSearch(
	ctx context.Context, query string, searchContext domain.SearchContext, resultCount int,
) error {
	event := driven.SearchEvent{
		ID:          uuid.NewString(),
		Kind:        EventKindSearch,
		Query:       query,
		Context:     searchContext.String(),
		ResultCount: resultCount,
		OccurredAt:  a.now(),
	}
	if err := a.store.Append(ctx, event); err != nil {
		return fmt.Errorf("appending search event: %w", err)
	}
	return nil
}

// RecordClick logs a result click with its list position.
func (a *AnalyticsService) RecordClick(
	ctx context.Context, query string, result domain.SearchResult, position int,
) error {
	event := driven.SearchEvent{
		ID:             uuid.NewString(),
		Kind:           EventKindClick,
		Query:          query,
		ResultIdentity: result.Identity(),
		Position:       position,
		OccurredAt:     a.now(),
	}
	if err := a.store.Append(ctx, event); err != nil {
		return fmt.Errorf("appending click event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, most recent first.
func (a *AnalyticsService) Recent(ctx context.Context, limit int) ([]driven.SearchEvent, error) {
	events, err := a.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading search log: %w", err)
	}
	return events, nil
}
