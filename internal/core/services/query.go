package services

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
	"github.com/custodia-labs/unisearch/internal/debounce"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure QueryController implements the interface.
var _ driving.QueryController = (*QueryController)(nil)

// QueryControllerConfig configures a QueryController.
type QueryControllerConfig struct {
	// Debounce is the delay between the last keystroke and the search.
	// Zero selects the default.
	Debounce time.Duration

	// MinQueryLength is the minimum query length before a search runs.
	// Zero selects the default.
	MinQueryLength int

	// SuggestionLimit caps type-ahead suggestions. Zero selects the
	// default.
	SuggestionLimit int

	// OnUpdate receives every state change. May be nil for hosts that
	// poll State instead.
	OnUpdate func(driving.QueryUpdate)
}

// QueryController owns live search state. Keystrokes are debounced,
// responses are tagged with a generation so a stale response never
// overwrites a newer one, and completed searches land in history.
type QueryController struct {
	search  driving.SearchService
	history driven.HistoryStore
	cfg     QueryControllerConfig

	ctx    context.Context
	cancel context.CancelFunc
	deb    *debounce.Debouncer

	mu          sync.Mutex
	state       domain.QueryState
	response    *domain.SearchResponse
	suggestions []string
	searching   bool
	err         error
	generation  uint64
	closed      bool
}

// NewQueryController creates a controller over the search service.
// history may be nil, making history session-scoped. Persisted history
// is loaded best effort.
func NewQueryController(
	search driving.SearchService, history driven.HistoryStore, cfg QueryControllerConfig,
) *QueryController {
	if cfg.Debounce == 0 {
		cfg.Debounce = time.Duration(domain.DefaultDebounceMillis) * time.Millisecond
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = domain.MinQueryLength
	}
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = DefaultSuggestionLimit
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &QueryController{
		search:  search,
		history: history,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		deb:     debounce.New(cfg.Debounce),
		state:   domain.NewQueryState(),
	}

	if history != nil {
		entries, err := history.Load(ctx)
		if err != nil {
			logger.Warn("loading search history: %v", err)
		} else {
			for i := len(entries) - 1; i >= 0; i-- {
				c.state.PushHistory(entries[i])
			}
		}
	}

	return c
}

// SetQuery updates the query text and schedules a debounced search.
// Queries below the minimum length clear results immediately.
func (c *QueryController) SetQuery(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.Query = query

	if utf8.RuneCountInString(strings.TrimSpace(query)) < c.cfg.MinQueryLength {
		logger.Debug("Query %q below minimum length, clearing results", query)
		c.generation++
		c.deb.Cancel()
		c.response = nil
		c.suggestions = nil
		c.searching = false
		c.err = nil
		update := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(update)
		return
	}
	c.mu.Unlock()

	logger.Debug("Debouncing search for %q", query)
	c.deb.Trigger(func() { c.runSearch(query) })
}

// SearchNow runs the current query immediately, bypassing the debounce.
func (c *QueryController) SearchNow() {
	c.deb.Cancel()

	c.mu.Lock()
	query := c.state.Query
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	go c.runSearch(query)
}

// SetContentTypes replaces the type filter and reruns the current query.
func (c *QueryController) SetContentTypes(types []domain.ContentType) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.SelectedContentTypes = append([]domain.ContentType(nil), types...)
	query := c.state.Query
	c.mu.Unlock()

	c.rerun(query)
}

// SetContext switches the search context and reruns the current query.
func (c *QueryController) SetContext(searchContext domain.SearchContext) error {
	if !searchContext.IsValid() {
		return domain.ErrInvalidInput
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrControllerClosed
	}
	c.state.Context = searchContext
	query := c.state.Query
	c.mu.Unlock()

	c.rerun(query)
	return nil
}

// History returns recent queries, most recent first.
func (c *QueryController) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.state.History...)
}

// ClearHistory empties the history, including any persistent copy.
func (c *QueryController) ClearHistory(ctx context.Context) error {
	c.mu.Lock()
	c.state.ClearHistory()
	update := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(update)

	if c.history != nil {
		return c.history.Clear(ctx)
	}
	return nil
}

// State returns a snapshot of the current controller state.
func (c *QueryController) State() domain.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked().State
}

// Close cancels pending work and discards in-flight results.
func (c *QueryController) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.deb.Stop()
	c.cancel()
	return nil
}

// rerun starts an immediate search when the query meets the minimum,
// otherwise just reports the state change.
func (c *QueryController) rerun(query string) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) >= c.cfg.MinQueryLength {
		go c.runSearch(query)
		return
	}
	c.mu.Lock()
	update := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(update)
}

// runSearch executes one search cycle for query. The generation taken
// at the start must still be current when the response lands,
// otherwise the response is stale and dropped.
func (c *QueryController) runSearch(query string) {
	c.mu.Lock()
	if c.closed || c.state.Query != query {
		c.mu.Unlock()
		return
	}
	c.generation++
	gen := c.generation
	filters := c.state.Filters()
	c.searching = true
	c.err = nil
	update := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(update)

	resp, err := c.search.Search(c.ctx, query, filters)

	c.mu.Lock()
	if c.closed || gen != c.generation {
		logger.Debug("Dropping stale response for %q", query)
		c.mu.Unlock()
		return
	}
	c.searching = false
	if err != nil {
		c.err = err
		c.response = nil
		c.suggestions = nil
	} else {
		c.response = resp
		c.suggestions = titleSuggestions(resp.Results, query, c.cfg.SuggestionLimit)
		c.state.PushHistory(query)
	}
	entries := append([]string(nil), c.state.History...)
	update = c.snapshotLocked()
	c.mu.Unlock()

	if err == nil && c.history != nil {
		if saveErr := c.history.Save(c.ctx, entries); saveErr != nil {
			logger.Warn("saving search history: %v", saveErr)
		}
	}
	c.emit(update)
}

// snapshotLocked builds an update from the current state. Caller holds
// the lock.
func (c *QueryController) snapshotLocked() driving.QueryUpdate {
	state := c.state
	state.SelectedContentTypes = append([]domain.ContentType(nil), c.state.SelectedContentTypes...)
	state.History = append([]string(nil), c.state.History...)
	return driving.QueryUpdate{
		State:       state,
		Response:    c.response,
		Suggestions: append([]string(nil), c.suggestions...),
		Searching:   c.searching,
		Err:         c.err,
	}
}

func (c *QueryController) emit(update driving.QueryUpdate) {
	if c.cfg.OnUpdate != nil {
		c.cfg.OnUpdate(update)
	}
}

// titleSuggestions collects up to limit distinct result titles that
// contain the query, preserving rank order.
func titleSuggestions(results []domain.SearchResult, query string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)
	for _, r := range results {
		title := strings.TrimSpace(r.Title)
		if title == "" || !strings.Contains(strings.ToLower(title), needle) {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		suggestions = append(suggestions, title)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
