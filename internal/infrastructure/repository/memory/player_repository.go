package memory

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/player"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[int64]player.Player
	teams *TeamRepository
}

func NewPlayerRepository(teams *TeamRepository) *PlayerRepository {
	return &PlayerRepository{
		items: make(map[int64]player.Player),
		teams: teams,
	}
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) error {
	if r.teams != nil {
		ok, err := r.teams.Exists(ctx, item.TeamID)
		if err != nil {
			return err
		}
		if !ok {
			return crerr.Wrapf(store.ErrForeignKeyMissing, "team %d", item.TeamID)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return crerr.Wrapf(store.ErrDuplicateKey, "player %d", item.ID)
	}

	r.items[item.ID] = item
	return nil
}

func (r *PlayerRepository) Exists(_ context.Context, playerID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[playerID]
	return ok, nil
}

func (r *PlayerRepository) Get(playerID int64) (player.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[playerID]
	return item, ok
}
