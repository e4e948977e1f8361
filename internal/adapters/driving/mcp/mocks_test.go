package mcp

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// mockSearchService implements driving.SearchService for tests.
type mockSearchService struct {
	response    *domain.SearchResponse
	suggestions []string
	err         error

	lastQuery   string
	lastFilters domain.SearchFilters
}

func (m *mockSearchService) Search(
	_ context.Context, query string, filters domain.SearchFilters,
) (*domain.SearchResponse, error) {
	m.lastQuery = query
	m.lastFilters = filters
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &domain.SearchResponse{Query: query, Context: filters.Context}, nil
}

func (m *mockSearchService) Suggestions(_ context.Context, query string, _ int) ([]string, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.suggestions, nil
}

// mockActionService implements driving.ResultActionService for tests.
type mockActionService struct {
	opened []string
}

func (m *mockActionService) Resolve(result domain.SearchResult) string {
	return domain.Resolve(result)
}

func (m *mockActionService) Open(_ context.Context, result domain.SearchResult, _ int, _ string) error {
	m.opened = append(m.opened, domain.Resolve(result))
	return nil
}

func (m *mockActionService) Prefetch(context.Context, domain.SearchResult) error {
	return nil
}

// mockHistoryStore implements driven.HistoryStore for tests.
type mockHistoryStore struct {
	entries []string
	err     error
}

func (m *mockHistoryStore) Load(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockHistoryStore) Save(_ context.Context, entries []string) error {
	m.entries = entries
	return nil
}

func (m *mockHistoryStore) Clear(context.Context) error {
	m.entries = nil
	return nil
}
