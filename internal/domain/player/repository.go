package player

import "context"

// Repository is the production store for players.
type Repository interface {
	Insert(ctx context.Context, item Player) error
	Exists(ctx context.Context, playerID int64) (bool, error)
}
