package memory

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/match"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
)

type MatchRepository struct {
	mu      sync.RWMutex
	items   map[int64]match.Match
	leagues *LeagueRepository
	teams   *TeamRepository
}

func NewMatchRepository(leagues *LeagueRepository, teams *TeamRepository) *MatchRepository {
	return &MatchRepository{
		items:   make(map[int64]match.Match),
		leagues: leagues,
		teams:   teams,
	}
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) error {
	if item.SameTeams() {
		return crerr.Wrapf(store.ErrForeignKeyMissing, "match %d references one team twice", item.ID)
	}

	if r.leagues != nil {
		ok, err := r.leagues.Exists(ctx, item.LeagueID)
		if err != nil {
			return err
		}
		if !ok {
			return crerr.Wrapf(store.ErrForeignKeyMissing, "league %d", item.LeagueID)
		}
	}
	if r.teams != nil {
		for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
			ok, err := r.teams.Exists(ctx, teamID)
			if err != nil {
				return err
			}
			if !ok {
				return crerr.Wrapf(store.ErrForeignKeyMissing, "team %d", teamID)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return crerr.Wrapf(store.ErrDuplicateKey, "match %d", item.ID)
	}

	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) Exists(_ context.Context, matchID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[matchID]
	return ok, nil
}

func (r *MatchRepository) Get(matchID int64) (match.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	return item, ok
}
