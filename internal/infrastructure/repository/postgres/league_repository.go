package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/league"
	qb "github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Insert(ctx context.Context, item league.League) error {
	model := leagueTableModel{
		LeagueID:    item.ID,
		LeagueName:  item.Name,
		Country:     item.Country,
		SportType:   item.SportType,
		FoundedYear: item.FoundedYear,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
	}

	query, args, err := qb.InsertModel("leagues", model, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *LeagueRepository) Exists(ctx context.Context, leagueID int64) (bool, error) {
	return existsByID(ctx, r.db, "leagues", "league_id", leagueID)
}
