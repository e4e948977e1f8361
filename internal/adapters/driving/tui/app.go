package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
)

// contextCycle is the tab-key rotation order.
var contextCycle = []domain.SearchContext{
	domain.ContextGeneral,
	domain.ContextLearning,
	domain.ContextTeaching,
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// A single screen hosts the query input, the result list, and the
// status bar. Every keystroke goes to the query controller, which
// debounces and searches; controller updates arrive through the
// Updates channel as QueryUpdated messages.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the active keybindings.
	keymap *keymap.KeyMap

	// queryInput is the search input component.
	queryInput *input.QueryInput

	// resultList is the result list component.
	resultList *list.ResultList

	// statusBar is the status bar component.
	statusBar *status.Bar

	// update is the latest controller state delivered to the app.
	update driving.QueryUpdate

	// historyIndex tracks the ctrl+r recall position, -1 when idle.
	historyIndex int

	// notice is a transient line shown after opening a result.
	notice string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		resultList:   list.NewResultList(s),
		statusBar:    status.NewBar(s, km),
		historyIndex: -1,
	}
	app.queryInput = input.NewQueryInput(s, app.t("search.placeholder", "Search courses, lessons, posts..."))
	app.statusBar.SetContext(ports.Query.State().Context)

	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("unisearch"),
		a.queryInput.Init(),
		a.waitForUpdate(),
	)
}

// waitForUpdate blocks on the controller update channel and re-arms
// after every delivery.
func (a *App) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-a.ports.Updates
		if !ok {
			return nil
		}
		return messages.QueryUpdated{Update: update}
	}
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.queryInput.SetWidth(msg.Width)
		a.resultList.SetDimensions(msg.Width, msg.Height-8)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.QueryUpdated:
		a.applyUpdate(msg.Update)
		return a, a.waitForUpdate()

	case messages.ResultOpened:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.notice = fmt.Sprintf("Opened %s", msg.Path)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil
	}

	return a, nil
}

// handleKey routes a keypress. Navigation and action keys are handled
// here; everything else edits the query.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		_ = a.ports.Query.Close()
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Up):
		a.resultList.MoveUp()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Down):
		a.resultList.MoveDown()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Open):
		if result := a.resultList.SelectedResult(); result != nil {
			return a, a.openResult(*result, a.resultList.Selected())
		}
		a.ports.Query.SearchNow()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Clear):
		if a.queryInput.Value() == "" {
			_ = a.ports.Query.Close()
			return a, tea.Quit
		}
		a.queryInput.Reset()
		a.notice = ""
		a.historyIndex = -1
		a.ports.Query.SetQuery("")
		return a, nil

	case keymap.Matches(keyStr, a.keymap.CycleContext):
		next := a.nextContext()
		if err := a.ports.Query.SetContext(next); err == nil {
			a.statusBar.SetContext(next)
		}
		return a, nil

	case keymap.Matches(keyStr, a.keymap.History):
		a.recallHistory()
		return a, nil
	}

	// Everything else edits the query
	before := a.queryInput.Value()
	var cmd tea.Cmd
	a.queryInput, cmd = a.queryInput.Update(msg)
	if after := a.queryInput.Value(); after != before {
		a.notice = ""
		a.historyIndex = -1
		a.ports.Query.SetQuery(after)
	}
	return a, cmd
}

// openResult opens the selected result in the background and reports
// the outcome as a ResultOpened message.
func (a *App) openResult(result domain.SearchResult, position int) tea.Cmd {
	ctx := a.ctx
	query := a.queryInput.Value()
	return func() tea.Msg {
		path := a.ports.Actions.Resolve(result)
		err := a.ports.Actions.Open(ctx, result, position, query)
		return messages.ResultOpened{Path: path, Err: err}
	}
}

// nextContext returns the context after the current one in the cycle.
func (a *App) nextContext() domain.SearchContext {
	current := a.ports.Query.State().Context
	for i, ctx := range contextCycle {
		if ctx == current {
			return contextCycle[(i+1)%len(contextCycle)]
		}
	}
	return domain.ContextGeneral
}

// recallHistory cycles through recent queries, oldest last, wrapping
// back to the most recent.
func (a *App) recallHistory() {
	history := a.ports.Query.History()
	if len(history) == 0 {
		return
	}

	a.historyIndex = (a.historyIndex + 1) % len(history)
	recalled := history[a.historyIndex]
	a.queryInput.SetValue(recalled)
	a.ports.Query.SetQuery(recalled)
}

// applyUpdate copies a controller state change into the components.
func (a *App) applyUpdate(update driving.QueryUpdate) {
	a.update = update
	a.err = update.Err

	switch {
	case update.Err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(update.Err.Error())
		a.resultList.SetResults(nil, update.State.Query)

	case update.Searching:
		a.statusBar.SetState(status.StateSearching)
		a.statusBar.SetMessage("")

	case update.Response != nil:
		a.statusBar.SetState(status.StateResults)
		a.statusBar.SetMessage("")
		a.statusBar.SetResults(len(update.Response.Results), update.Response.Stats.SearchTime)
		a.resultList.SetResults(update.Response.Results, update.State.Query)

	default:
		a.statusBar.Clear()
		a.resultList.SetResults(nil, "")
	}
	a.statusBar.SetContext(update.State.Context)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	title := a.styles.Title.Render(a.t("search.title", "unisearch"))

	sections := []string{
		title,
		"",
		a.queryInput.View(),
	}

	if line := a.suggestionLine(); line != "" {
		sections = append(sections, line)
	}
	if a.notice != "" {
		sections = append(sections, a.styles.Success.Render(a.notice))
	}

	sections = append(sections,
		"",
		a.resultList.View(),
		"",
		a.statusBar.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// suggestionLine renders the type-ahead suggestions, if any.
func (a *App) suggestionLine() string {
	if len(a.update.Suggestions) == 0 {
		return ""
	}
	label := a.t("search.suggestions", "Suggestions")
	return a.styles.Muted.Render(label + ": " + strings.Join(a.update.Suggestions, " · "))
}

// t resolves a translated string with a fallback.
func (a *App) t(key, fallback string) string {
	if a.ports.Translator == nil {
		return fallback
	}
	return a.ports.Translator.T(key, fallback)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current query text.
func (a *App) Query() string {
	return a.queryInput.Value()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.resultList.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.resultList.Selected()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.queryInput.SetWidth(width)
	a.resultList.SetDimensions(width, height-8)
	a.statusBar.SetWidth(width)
}
