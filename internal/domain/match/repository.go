package match

import "context"

// Repository is the production store for matches. The backing store enforces
// the league and team foreign keys plus the home/away distinctness check.
type Repository interface {
	Insert(ctx context.Context, item Match) error
	Exists(ctx context.Context, matchID int64) (bool, error)
}
