package domain

import "strings"

// HistoryLimit caps the number of remembered queries.
const HistoryLimit = 5

// Query behaviour defaults.
const (
	// MinQueryLength is the minimum query length before a search runs.
	MinQueryLength = 2

	// DefaultDebounceMillis is the default live-query debounce delay.
	DefaultDebounceMillis = 500

	// DefaultResultLimit is the default per-search result cap.
	DefaultResultLimit = 50

	// DefaultRateBurst is the token bucket burst size used when a
	// provider rate limit is configured.
	DefaultRateBurst = 5
)

// SearchContext scopes a search to a slice of the platform.
type SearchContext string

// Available search contexts.
const (
	// ContextGeneral searches everything the caller may see.
	ContextGeneral SearchContext = "general"

	// ContextLearning narrows to learner-facing content.
	ContextLearning SearchContext = "learning"

	// ContextTeaching narrows to teaching-facing content.
	ContextTeaching SearchContext = "teaching"
)

// IsValid returns true if the context is recognised.
func (c SearchContext) IsValid() bool {
	switch c {
	case ContextGeneral, ContextLearning, ContextTeaching:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c SearchContext) String() string {
	return string(c)
}

// SearchFilters is what a query controller hands to the search
// provider alongside the query text.
type SearchFilters struct {
	// ContentTypes limits results to these types; empty means all.
	ContentTypes []ContentType

	// Context scopes the search.
	Context SearchContext

	// Limit caps the number of results; non-positive means the
	// provider default.
	Limit int
}

// QueryState is the controller-owned search state. History is the
// only part that outlives a single search cycle; it is session-scoped
// unless the host wires a persistent store.
type QueryState struct {
	// Query is the current query text, updated on every keystroke.
	Query string

	// SelectedContentTypes is the active type filter; empty means all.
	SelectedContentTypes []ContentType

	// Context is the active search context.
	Context SearchContext

	// History holds recent queries, most recent first, de-duplicated
	// by exact string match and capped at HistoryLimit.
	History []string
}

// NewQueryState returns the initial state: empty query, no filters,
// general context.
func NewQueryState() QueryState {
	return QueryState{Context: ContextGeneral}
}

// PushHistory records a query at the front of the history, dropping
// any prior occurrence of the exact same string and truncating to
// HistoryLimit entries. Blank queries are ignored.
func (s *QueryState) PushHistory(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	next := make([]string, 0, len(s.History)+1)
	next = append(next, query)
	for _, prev := range s.History {
		if prev != query {
			next = append(next, prev)
		}
	}
	if len(next) > HistoryLimit {
		next = next[:HistoryLimit]
	}
	s.History = next
}

// ClearHistory empties the history.
func (s *QueryState) ClearHistory() {
	s.History = nil
}

// Filters derives the provider filters from the current state.
func (s *QueryState) Filters() SearchFilters {
	types := make([]ContentType, len(s.SelectedContentTypes))
	copy(types, s.SelectedContentTypes)
	return SearchFilters{
		ContentTypes: types,
		Context:      s.Context,
	}
}
