package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/team"
	qb "github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) error {
	model := teamTableModel{
		TeamID:      item.ID,
		LeagueID:    item.LeagueID,
		TeamName:    item.Name,
		City:        item.City,
		Stadium:     item.Stadium,
		FoundedYear: item.FoundedYear,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
	}

	query, args, err := qb.InsertModel("teams", model, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *TeamRepository) Exists(ctx context.Context, teamID int64) (bool, error) {
	return existsByID(ctx, r.db, "teams", "team_id", teamID)
}
