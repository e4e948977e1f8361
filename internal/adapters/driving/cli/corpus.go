package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local search corpus",
	Long: `Commands for the record corpus the built-in search provider runs
against. Records carry a table name, an ID unique within that table, a
content type, a title, and a searchable body.`,
}

var (
	corpusAddTable string
	corpusAddTitle string
	corpusAddBody  string
	corpusAddData  []string

	corpusAddCmd = &cobra.Command{
		Use:   "add [content-type] [record-id]",
		Short: "Add or replace a single record",
		Long: `Adds a record to the corpus, replacing any existing record with the
same table name and ID.

Example:
  unisearch corpus add course 42 --title "Go Fundamentals" \
    --body "Learn Go from scratch" --data slug=go-fundamentals`,
		Args: cobra.ExactArgs(2),
		RunE: runCorpusAdd,
	}
)

var corpusImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import records from a JSON file",
	Long: `Imports records from a JSON array. Each element carries table_name,
record_id, content_type, title, body, and optionally created_at and
fields:

  [
    {
      "table_name": "courses",
      "record_id": "42",
      "content_type": "course",
      "title": "Go Fundamentals",
      "body": "Learn Go from scratch",
      "fields": {"slug": "go-fundamentals"}
    }
  ]`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

var corpusCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of records in the corpus",
	RunE:  runCorpusCount,
}

func init() {
	corpusAddCmd.Flags().StringVar(&corpusAddTable, "table", "", "source table name (defaults to the content type)")
	corpusAddCmd.Flags().StringVar(&corpusAddTitle, "title", "", "record title")
	corpusAddCmd.Flags().StringVar(&corpusAddBody, "body", "", "searchable body text")
	corpusAddCmd.Flags().StringSliceVarP(&corpusAddData, "data", "d", nil, "type-specific attribute as key=value (repeatable)")
	corpusCmd.AddCommand(corpusAddCmd)
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusCountCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusAdd(cmd *cobra.Command, args []string) error {
	contentType := domain.ContentType(args[0])
	if !contentType.IsValid() {
		return fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, args[0])
	}

	table := corpusAddTable
	if table == "" {
		table = string(contentType) + "s"
	}

	record := driven.Record{
		TableName:   table,
		ID:          domain.RecordID(args[1]),
		ContentType: contentType,
		Title:       corpusAddTitle,
		Body:        corpusAddBody,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if len(corpusAddData) > 0 {
		record.Fields = make(map[string]any, len(corpusAddData))
		for _, pair := range corpusAddData {
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return fmt.Errorf("%w: --data wants key=value, got %q", domain.ErrInvalidInput, pair)
			}
			record.Fields[key] = value
		}
	}

	if err := recordStore.Put(cmd.Context(), record); err != nil {
		return fmt.Errorf("storing record: %w", err)
	}
	cmd.Printf("Stored %s:%s\n", record.TableName, record.ID)
	return nil
}

// importRecord is the JSON shape accepted by corpus import.
type importRecord struct {
	TableName   string          `json:"table_name"`
	RecordID    domain.RecordID `json:"record_id"`
	ContentType string          `json:"content_type"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	CreatedAt   string          `json:"created_at"`
	Fields      map[string]any  `json:"fields"`
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	imported := 0
	for i, in := range records {
		contentType := domain.ContentType(in.ContentType)
		if !contentType.IsValid() {
			return fmt.Errorf("%w: record %d has unknown content type %q", domain.ErrInvalidInput, i, in.ContentType)
		}
		table := in.TableName
		if table == "" {
			table = in.ContentType + "s"
		}

		record := driven.Record{
			TableName:   table,
			ID:          in.RecordID,
			ContentType: contentType,
			Title:       in.Title,
			Body:        in.Body,
			CreatedAt:   in.CreatedAt,
			Fields:      in.Fields,
		}
		if err := recordStore.Put(cmd.Context(), record); err != nil {
			return fmt.Errorf("storing record %d (%s:%s): %w", i, table, in.RecordID, err)
		}
		imported++
	}

	cmd.Printf("Imported %d records.\n", imported)
	return nil
}

func runCorpusCount(cmd *cobra.Command, _ []string) error {
	count, err := recordStore.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}
	cmd.Printf("%d records\n", count)
	return nil
}
