package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

var (
	resolveTable string
	resolveData  []string
	resolveOpen  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [content-type] [record-id]",
	Short: "Resolve a result to its navigation path",
	Long: `Resolves a content type and record ID to the navigation path a
search result of that shape would open. Type-specific attributes can
be supplied with --data; a course with a slug resolves to its slug
path, a lesson with a course_id resolves into the course player, and
so on. Unknown shapes fall back to a search deep link.

Examples:
  unisearch resolve course 42 --data slug=go-fundamentals
  unisearch resolve lesson 7 --data course_id=3
  unisearch resolve user 12 --data username=ada`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveTable, "table", "", "source table name (defaults to the content type)")
	resolveCmd.Flags().StringSliceVarP(&resolveData, "data", "d", nil, "type-specific attribute as key=value (repeatable)")
	resolveCmd.Flags().BoolVar(&resolveOpen, "open", false, "open the resolved path in the browser")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	contentType := domain.ContentType(args[0])

	table := resolveTable
	if table == "" {
		table = string(contentType) + "s"
	}

	result := domain.SearchResult{
		TableName:   table,
		RecordID:    domain.RecordID(args[1]),
		ContentType: contentType,
	}
	if len(resolveData) > 0 {
		result.AdditionalData = make(map[string]any, len(resolveData))
		for _, pair := range resolveData {
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return fmt.Errorf("%w: --data wants key=value, got %q", domain.ErrInvalidInput, pair)
			}
			result.AdditionalData[key] = value
		}
	}

	path := actionService.Resolve(result)
	cmd.Println(path)

	if resolveOpen {
		if err := actionService.Open(cmd.Context(), result, 0, ""); err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
	}
	return nil
}
