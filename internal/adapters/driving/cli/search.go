package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

var (
	searchLimit   int
	searchJSON    bool
	searchContext string
	searchTypes   []string
	searchOpen    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the local corpus",
	Long: `Runs a one-shot search across the local corpus and prints ranked
results with excerpts. Results are scored by where the query terms
match: full-phrase title hits rank highest, then all-terms-in-title,
then body matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVarP(&searchContext, "context", "c", "", "search context: general, learning, or teaching")
	searchCmd.Flags().StringSliceVarP(&searchTypes, "type", "t", nil, "restrict to content types (repeatable)")
	searchCmd.Flags().BoolVar(&searchOpen, "open", false, "open the top result after searching")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	filters, err := searchFilters(searchContext, searchTypes, searchLimit)
	if err != nil {
		return err
	}

	resp, err := searchService.Search(cmd.Context(), query, filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		if err := outputSearchJSON(cmd, resp); err != nil {
			return err
		}
	} else {
		outputSearchText(cmd, resp)
	}

	if searchOpen && len(resp.Results) > 0 {
		if err := actionService.Open(cmd.Context(), resp.Results[0], 0, query); err != nil {
			return fmt.Errorf("opening top result: %w", err)
		}
	}
	return nil
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, resp *domain.SearchResponse) {
	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Printf("Results (%d, %d types):\n", resp.Stats.TotalResults, resp.Stats.ContentTypes)
	cmd.Println()
	for i := range resp.Results {
		result := &resp.Results[i]
		info := result.ContentType.Info()

		title := result.Title
		if title == "" {
			title = "(Untitled)"
		}

		cmd.Printf("  [%d] %s %s [%s] (%.2f)\n", i+1, info.Icon, title, info.Label, result.Rank)
		cmd.Printf("      %s\n", actionService.Resolve(*result))
		if snippet := strings.TrimSpace(result.Snippet); snippet != "" {
			cmd.Printf("      %s\n", strings.Join(strings.Fields(snippet), " "))
		}
		cmd.Println()
	}
}
