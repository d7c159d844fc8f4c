package memory

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/league"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
)

// LeagueRepository is an in-memory production league store used by tests and
// the DB-less demo mode.
type LeagueRepository struct {
	mu    sync.RWMutex
	items map[int64]league.League
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{items: make(map[int64]league.League)}
}

func (r *LeagueRepository) Insert(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return crerr.Wrapf(store.ErrDuplicateKey, "league %d", item.ID)
	}

	r.items[item.ID] = item
	return nil
}

func (r *LeagueRepository) Exists(_ context.Context, leagueID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[leagueID]
	return ok, nil
}

// Get returns a committed league, for assertions in tests.
func (r *LeagueRepository) Get(leagueID int64) (league.League, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID]
	return item, ok
}
