package league

import "context"

// Repository is the production store for leagues. Insert is insert-if-absent:
// a colliding primary key surfaces store.ErrDuplicateKey.
type Repository interface {
	Insert(ctx context.Context, item League) error
	Exists(ctx context.Context, leagueID int64) (bool, error)
}
