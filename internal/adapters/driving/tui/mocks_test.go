package tui

import (
	"context"
	"sync"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
)

// mockQueryController records calls and exposes a controllable state.
type mockQueryController struct {
	mu sync.Mutex

	state      domain.QueryState
	setQueries []string
	searchNow  int
	contexts   []domain.SearchContext
	closed     bool
}

var _ driving.QueryController = (*mockQueryController)(nil)

func newMockQueryController() *mockQueryController {
	return &mockQueryController{state: domain.NewQueryState()}
}

func (m *mockQueryController) SetQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Query = query
	m.setQueries = append(m.setQueries, query)
}

func (m *mockQueryController) SearchNow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchNow++
}

func (m *mockQueryController) SetContentTypes(types []domain.ContentType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SelectedContentTypes = types
}

func (m *mockQueryController) SetContext(searchContext domain.SearchContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !searchContext.IsValid() {
		return domain.ErrInvalidInput
	}
	m.state.Context = searchContext
	m.contexts = append(m.contexts, searchContext)
	return nil
}

func (m *mockQueryController) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.state.History...)
}

func (m *mockQueryController) ClearHistory(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ClearHistory()
	return nil
}

func (m *mockQueryController) State() domain.QueryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockQueryController) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockQueryController) queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.setQueries...)
}

// mockActionService resolves everything to a fixed path.
type mockActionService struct {
	mu sync.Mutex

	openErr    error
	opened     []domain.SearchResult
	prefetched []domain.SearchResult
}

var _ driving.ResultActionService = (*mockActionService)(nil)

func (m *mockActionService) Resolve(result domain.SearchResult) string {
	return "/search?q=" + result.Title
}

func (m *mockActionService) Open(ctx context.Context, result domain.SearchResult, position int, query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = append(m.opened, result)
	return nil
}

func (m *mockActionService) Prefetch(ctx context.Context, result domain.SearchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefetched = append(m.prefetched, result)
	return nil
}

// staticTranslator returns canned strings.
type staticTranslator struct {
	entries map[string]string
}

func (s *staticTranslator) T(key, fallback string) string {
	if v, ok := s.entries[key]; ok {
		return v
	}
	return fallback
}
