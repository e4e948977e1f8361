package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
)

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

// Put inserts or replaces a record, keyed by table name and ID.
func (r *recordStore) Put(ctx context.Context, record driven.Record) error {
	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("marshalling record fields: %w", err)
	}

	_, err = r.store.db.ExecContext(ctx, `
		INSERT INTO records
			(table_name, record_id, content_type, title, body, created_at, fields)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(table_name, record_id) DO UPDATE SET
			content_type = excluded.content_type,
			title = excluded.title,
			body = excluded.body,
			created_at = excluded.created_at,
			fields = excluded.fields
	`, record.TableName, string(record.ID), string(record.ContentType),
		record.Title, record.Body, record.CreatedAt, string(fieldsJSON))
	if err != nil {
		return fmt.Errorf("storing record: %w", err)
	}
	return nil
}

// All returns every record, optionally limited to the given types.
func (r *recordStore) All(ctx context.Context, types []domain.ContentType) ([]driven.Record, error) {
	query := `
		SELECT table_name, record_id, content_type, title, body, created_at, fields
		FROM records
	`
	var args []any
	if len(types) > 0 {
		placeholders := make([]string, len(types))
		for i, t := range types {
			placeholders[i] = "?"
			args = append(args, string(t))
		}
		query += " WHERE content_type IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY table_name, record_id"

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []driven.Record
	for rows.Next() {
		var record driven.Record
		var id, contentType, fieldsJSON string
		if err := rows.Scan(
			&record.TableName, &id, &contentType,
			&record.Title, &record.Body, &record.CreatedAt, &fieldsJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		record.ID = domain.RecordID(id)
		record.ContentType = domain.ContentType(contentType)
		if fieldsJSON != "" && fieldsJSON != "null" {
			if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
				return nil, fmt.Errorf("unmarshalling record fields: %w", err)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record rows: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *recordStore) Count(ctx context.Context) (int, error) {
	var count int
	row := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}
