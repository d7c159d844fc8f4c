package memory

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/team"
)

// TeamRepository enforces the league foreign key the way the production
// schema does, so loader behavior matches the SQL store.
type TeamRepository struct {
	mu      sync.RWMutex
	items   map[int64]team.Team
	leagues *LeagueRepository
}

func NewTeamRepository(leagues *LeagueRepository) *TeamRepository {
	return &TeamRepository{
		items:   make(map[int64]team.Team),
		leagues: leagues,
	}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) error {
	if r.leagues != nil {
		ok, err := r.leagues.Exists(ctx, item.LeagueID)
		if err != nil {
			return err
		}
		if !ok {
			return crerr.Wrapf(store.ErrForeignKeyMissing, "league %d", item.LeagueID)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return crerr.Wrapf(store.ErrDuplicateKey, "team %d", item.ID)
	}

	r.items[item.ID] = item
	return nil
}

func (r *TeamRepository) Exists(_ context.Context, teamID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[teamID]
	return ok, nil
}

func (r *TeamRepository) Get(teamID int64) (team.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	return item, ok
}
