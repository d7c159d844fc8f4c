package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/player"
	qb "github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) error {
	model := playerTableModel{
		PlayerID:     item.ID,
		TeamID:       item.TeamID,
		FirstName:    item.FirstName,
		LastName:     item.LastName,
		Position:     item.Position,
		Nationality:  item.Nationality,
		DateOfBirth:  item.DateOfBirth,
		JerseyNumber: item.JerseyNumber,
		IsActive:     item.IsActive,
		CreatedAt:    item.CreatedAt,
	}

	query, args, err := qb.InsertModel("players", model, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *PlayerRepository) Exists(ctx context.Context, playerID int64) (bool, error) {
	return existsByID(ctx, r.db, "players", "player_id", playerID)
}
