package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/unisearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
	"github.com/custodia-labs/unisearch/internal/core/services"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search UI",
	Long: `Launch the interactive terminal user interface.

Type to search; results update live as you type. Queries are debounced
and need at least two characters.

Controls:
  ↑/↓      Navigate results
  Enter    Open the selected result
  Tab      Cycle search context (general, learning, teaching)
  Ctrl+R   Recall recent queries
  Esc      Clear the query
  Ctrl+C   Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	// Panic recovery keeps the stack trace visible after the
	// alternate screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	updates := make(chan driving.QueryUpdate, 32)
	controller := services.NewQueryController(searchService, historyStore, services.QueryControllerConfig{
		Debounce:       time.Duration(appSettings.Search.DebounceMillis) * time.Millisecond,
		MinQueryLength: appSettings.Search.MinQueryLength,
		OnUpdate:       func(update driving.QueryUpdate) { updates <- update },
	})
	defer func() { _ = controller.Close() }()

	app, err := tui.NewApp(&tui.Ports{
		Query:      controller,
		Actions:    actionService,
		Updates:    updates,
		Translator: translator,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
