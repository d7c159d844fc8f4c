package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/match"
	qb "github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) error {
	model := matchTableModel{
		MatchID:     item.ID,
		LeagueID:    item.LeagueID,
		Season:      item.Season,
		MatchDate:   item.MatchDate,
		HomeTeamID:  item.HomeTeamID,
		AwayTeamID:  item.AwayTeamID,
		HomeScore:   item.HomeScore,
		AwayScore:   item.AwayScore,
		Stadium:     item.Stadium,
		MatchStatus: item.Status,
		Attendance:  item.Attendance,
		CreatedAt:   item.CreatedAt,
	}

	query, args, err := qb.InsertModel("matches", model, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *MatchRepository) Exists(ctx context.Context, matchID int64) (bool, error) {
	return existsByID(ctx, r.db, "matches", "match_id", matchID)
}
