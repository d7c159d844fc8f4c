package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
	qb "github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/querybuilder"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// mapStoreError marks constraint violations with the shared store sentinels so
// the loader can classify them. The CHECK violation case covers the
// home/away distinctness constraint, which only a writer bypassing the
// loader's own invariant check can trip.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return crerr.Mark(err, store.ErrDuplicateKey)
		case pqForeignKeyViolation, pqCheckViolation:
			return crerr.Mark(err, store.ErrForeignKeyMissing)
		}
	}

	return crerr.Mark(err, store.ErrUnavailable)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func existsByID(ctx context.Context, db *sqlx.DB, table, column string, id int64) (bool, error) {
	query, args, err := qb.Select("1").
		From(table).
		Where(qb.Eq(column, id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build %s existence query: %w", table, err)
	}

	var one int
	if err := db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, mapStoreError(err)
	}

	return true, nil
}
