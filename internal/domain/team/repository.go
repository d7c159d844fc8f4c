package team

import "context"

// Repository is the production store for teams. The backing store enforces the
// league foreign key; a dangling reference surfaces store.ErrForeignKeyMissing.
type Repository interface {
	Insert(ctx context.Context, item Team) error
	Exists(ctx context.Context, teamID int64) (bool, error)
}
