package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unisearch/internal/core/services"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	Long: `Prints recent search queries, most recent first. History is kept
de-duplicated and capped; enable history.persist in the config file to
carry it across sessions.`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	RunE:  runHistoryClear,
}

var (
	historyEventLimit int

	historyEventsCmd = &cobra.Command{
		Use:   "events",
		Short: "Show recent search and click events",
		Long: `Prints the recent entries of the search log: every executed search
with its result count, and every opened result with its position.`,
		RunE: runHistoryEvents,
	}
)

func init() {
	historyEventsCmd.Flags().IntVarP(&historyEventLimit, "limit", "n", 20, "maximum number of events")
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyEventsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	entries, err := historyStore.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No search history.")
		return nil
	}

	for i, entry := range entries {
		cmd.Printf("  %d. %s\n", i+1, entry)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if err := historyStore.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}

func runHistoryEvents(cmd *cobra.Command, _ []string) error {
	events, err := analyticsService.Recent(cmd.Context(), historyEventLimit)
	if err != nil {
		return fmt.Errorf("loading search log: %w", err)
	}

	if len(events) == 0 {
		cmd.Println("No events logged.")
		return nil
	}

	for _, event := range events {
		switch event.Kind {
		case services.EventKindClick:
			cmd.Printf("  %s  click   %s (position %d, query %q)\n",
				event.OccurredAt.Format("2006-01-02 15:04:05"),
				event.ResultIdentity, event.Position, event.Query)
		default:
			cmd.Printf("  %s  search  %q (%d results, %s)\n",
				event.OccurredAt.Format("2006-01-02 15:04:05"),
				event.Query, event.ResultCount, event.Context)
		}
	}
	return nil
}
