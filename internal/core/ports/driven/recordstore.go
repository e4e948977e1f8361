package driven

import (
	"context"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// Record is a searchable unit of platform content held in a local
// corpus. Body is the full text that matching and excerpting run over;
// Fields carries the type-specific attributes that path resolution and
// previews read.
type Record struct {
	// TableName is the backing table the record came from.
	TableName string
	// ID identifies the record within its table.
	ID domain.RecordID
	// ContentType classifies the record.
	ContentType domain.ContentType
	// Title is the display title.
	Title string
	// Body is the searchable text.
	Body string
	// CreatedAt is the record's creation timestamp, RFC 3339.
	CreatedAt string
	// Fields holds type-specific attributes (slugs, usernames, prices).
	Fields map[string]any
}

// RecordStore holds the local search corpus for the built-in provider.
type RecordStore interface {
	// All returns every record, optionally limited to the given types.
	// Empty types means all.
	All(ctx context.Context, types []domain.ContentType) ([]Record, error)

	// Put inserts or replaces a record, keyed by table name and ID.
	Put(ctx context.Context, record Record) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
