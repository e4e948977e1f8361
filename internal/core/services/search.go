package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultSuggestionLimit caps type-ahead suggestions.
const DefaultSuggestionLimit = 5

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithMinQueryLength overrides the minimum query length.
func WithMinQueryLength(n int) SearchOption {
	return func(s *SearchService) { s.minQueryLength = n }
}

// WithExcerptSettings overrides excerpt construction parameters.
func WithExcerptSettings(maxLength, contextRadius int) SearchOption {
	return func(s *SearchService) {
		s.excerptLength = maxLength
		s.contextRadius = contextRadius
	}
}

// WithRateLimit caps provider calls at n per second with the given
// burst. Non-positive n disables limiting.
func WithRateLimit(n float64, burst int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(n), burst)
		}
	}
}

// WithAnalytics records search events through the given service.
func WithAnalytics(a *AnalyticsService) SearchOption {
	return func(s *SearchService) { s.analytics = a }
}

// SearchService runs one-shot searches against the provider and
// post-processes results: excerpts are trimmed around the first match
// and stats are filled in when the provider leaves them empty.
type SearchService struct {
	provider       driven.SearchProvider
	limiter        *rate.Limiter
	analytics      *AnalyticsService
	minQueryLength int
	excerptLength  int
	contextRadius  int
}

// NewSearchService creates a search service backed by the provider.
func NewSearchService(provider driven.SearchProvider, opts ...SearchOption) *SearchService {
	s := &SearchService{
		provider:       provider,
		minQueryLength: domain.MinQueryLength,
		excerptLength:  domain.DefaultExcerptLength,
		contextRadius:  domain.DefaultContextRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs a single query against the provider and returns the
// ranked response with excerpted snippets.
func (s *SearchService) Search(
	ctx context.Context, query string, filters domain.SearchFilters,
) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minQueryLength {
		return nil, fmt.Errorf("%w: need at least %d characters", domain.ErrQueryTooShort, s.minQueryLength)
	}

	if !filters.Context.IsValid() {
		filters.Context = domain.ContextGeneral
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := s.provider.Search(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("search provider: %w", err)
	}
	if resp == nil {
		resp = &domain.SearchResponse{Query: query, Context: filters.Context}
	}
	logger.Debug("Provider returned %d results", len(resp.Results))

	for i := range resp.Results {
		resp.Results[i].Snippet = domain.BuildExcerpt(
			resp.Results[i].Snippet, query, s.excerptLength, s.contextRadius,
		)
	}
	s.fillStats(resp)

	if s.analytics != nil {
		if err := s.analytics.RecordSearch(ctx, query, filters.Context, len(resp.Results)); err != nil {
			logger.Warn("recording search event: %v", err)
		}
	}

	return resp, nil
}

// Suggestions returns up to limit distinct result titles containing
// the query, for type-ahead display.
func (s *SearchService) Suggestions(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	resp, err := s.Search(ctx, query, domain.SearchFilters{Context: domain.ContextGeneral})
	if err != nil {
		return nil, err
	}
	return titleSuggestions(resp.Results, query, limit), nil
}

// fillStats computes response stats when the provider left them empty.
func (s *SearchService) fillStats(resp *domain.SearchResponse) {
	if resp.Stats.TotalResults != 0 || len(resp.Results) == 0 {
		return
	}

	stats := domain.SearchStats{TotalResults: len(resp.Results)}
	types := make(map[domain.ContentType]struct{})
	for _, r := range resp.Results {
		types[r.ContentType] = struct{}{}
		if r.Rank > stats.MaxRank {
			stats.MaxRank = r.Rank
		}
	}
	stats.ContentTypes = len(types)
	resp.Stats = stats
}

// SortByRank orders results by descending rank, preserving provider
// order between equals.
func SortByRank(results []domain.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank > results[j].Rank
	})
}
