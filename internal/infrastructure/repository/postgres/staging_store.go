package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/querybuilder"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// StagingStore reads and writes the all-text staging tables. It implements
// both staging.Source for production loads and staging.BatchWriter for the
// CSV intake.
type StagingStore struct {
	db *sqlx.DB
}

func NewStagingStore(db *sqlx.DB) *StagingStore {
	return &StagingStore{db: db}
}

func (s *StagingStore) Rows(ctx context.Context, entity staging.Entity) ([]staging.Row, error) {
	table := entity.Table()
	columns := entity.Columns()
	if table == "" || len(columns) == 0 {
		return nil, fmt.Errorf("unknown staging entity %q", entity)
	}

	query, args, err := qb.Select(columns...).From(table).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError(err)
	}
	defer rows.Close()

	var out []staging.Row
	for rows.Next() {
		scanned := make(map[string]any, len(columns))
		if err := rows.MapScan(scanned); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		out = append(out, rawRow(scanned))
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err)
	}

	return out, nil
}

func (s *StagingStore) WriteBatch(ctx context.Context, entity staging.Entity, batch []staging.Row) error {
	if len(batch) == 0 {
		return nil
	}

	table := entity.Table()
	columns := entity.Columns()
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("unknown staging entity %q", entity)
	}

	builder := qb.InsertInto(table).Columns(columns...)
	for _, row := range batch {
		values := make([]any, len(columns))
		for i, column := range columns {
			values[i] = row[column]
		}
		builder.Values(values...)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// Truncate clears one staging table before a fresh intake run.
func (s *StagingStore) Truncate(ctx context.Context, entity staging.Entity) error {
	table := entity.Table()
	if table == "" {
		return fmt.Errorf("unknown staging entity %q", entity)
	}

	if _, err := s.db.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// rawRow converts scanned column values to raw text; staging columns are all
// text, but drivers may hand back byte slices or NULLs.
func rawRow(scanned map[string]any) staging.Row {
	row := make(staging.Row, len(scanned))
	for column, value := range scanned {
		switch v := value.(type) {
		case nil:
			row[column] = ""
		case []byte:
			row[column] = string(v)
		case string:
			row[column] = v
		default:
			row[column] = fmt.Sprint(v)
		}
	}
	return row
}
