package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure ResultActions implements the interface.
var _ driving.ResultActionService = (*ResultActions)(nil)

// ResultActions turns search results into navigation. Path resolution
// is pure; Open and Prefetch delegate the side effects to the
// navigator port.
type ResultActions struct {
	navigator driven.Navigator
	analytics *AnalyticsService
}

// NewResultActions creates the action service. analytics may be nil,
// in which case clicks are not recorded.
func NewResultActions(navigator driven.Navigator, analytics *AnalyticsService) *ResultActions {
	return &ResultActions{navigator: navigator, analytics: analytics}
}

// Resolve returns the navigation path for a result.
func (a *ResultActions) Resolve(result domain.SearchResult) string {
	return domain.Resolve(result)
}

// Open resolves the result, records the click, and navigates.
func (a *ResultActions) Open(
	ctx context.Context, result domain.SearchResult, position int, query string,
) error {
	path := domain.Resolve(result)
	logger.Debug("Opening %s at %s", result.ContentType, path)

	if a.analytics != nil {
		if err := a.analytics.RecordClick(ctx, query, result, position); err != nil {
			logger.Warn("recording click: %v", err)
		}
	}

	if err := a.navigator.Navigate(ctx, path); err != nil {
		return fmt.Errorf("navigating to %s: %w", path, err)
	}
	return nil
}

// Prefetch warms caches for the result's path.
func (a *ResultActions) Prefetch(ctx context.Context, result domain.SearchResult) error {
	path := domain.Resolve(result)
	if err := a.navigator.Prefetch(ctx, path); err != nil {
		return fmt.Errorf("prefetching %s: %w", path, err)
	}
	return nil
}
