package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/league"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/match"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/player"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/team"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// ErrUnknownEntity is returned for a batch of an entity type the loader does
// not know.
var ErrUnknownEntity = errors.New("unknown entity type")

// Loader cleanses staged rows for one entity type and commits them into
// production storage. Row-level failures are collected in the report and never
// abort the batch; only a storage failure does, and the partial report is
// still returned alongside the error.
type Loader struct {
	leagues  league.Repository
	teams    team.Repository
	players  player.Repository
	matches  match.Repository
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func New(
	leagues league.Repository,
	teams team.Repository,
	players player.Repository,
	matches match.Repository,
	logger *logging.Logger,
) *Loader {
	if logger == nil {
		logger = logging.Default()
	}

	return &Loader{
		leagues:  leagues,
		teams:    teams,
		players:  players,
		matches:  matches,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Load runs one staged batch to completion. Calls are safe to repeat:
// re-submitting an already committed identity is reported as DUPLICATE_KEY,
// never merged.
func (l *Loader) Load(ctx context.Context, entity staging.Entity, rows []staging.Row) (Report, error) {
	ctx, span := startLoaderSpan(ctx, "loader.Load."+string(entity))
	defer span.End()

	rep := newReport(entity)
	var err error

	switch entity {
	case staging.EntityLeague:
		err = l.loadLeagues(ctx, rows, &rep)
	case staging.EntityTeam:
		err = l.loadTeams(ctx, rows, &rep)
	case staging.EntityPlayer:
		err = l.loadPlayers(ctx, rows, &rep)
	case staging.EntityMatch:
		err = l.loadMatches(ctx, rows, &rep)
	default:
		return rep, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	if err != nil {
		l.logger.ErrorContext(ctx, "staging load aborted", "entity", entity, "error", err)
		return rep, fmt.Errorf("load %s batch: %w", entity, crerr.Mark(err, store.ErrUnavailable))
	}

	l.logger.InfoContext(ctx, "staging load finished",
		"entity", entity,
		"accepted", rep.Accepted,
		"rejected", rep.Rejected,
	)
	return rep, nil
}

func (l *Loader) loadLeagues(ctx context.Context, rows []staging.Row, rep *Report) error {
	seen := make(map[int64]struct{}, len(rows))
	for idx, row := range rows {
		key := row.Get(staging.ColLeagueID)

		item, err := convertLeague(row)
		if err != nil {
			rep.reject(idx, key, ReasonMalformedRequiredField, err.Error())
			continue
		}
		if detail, ok := l.requiredFieldFailure(item); ok {
			rep.reject(idx, key, ReasonMalformedRequiredField, detail)
			continue
		}

		dup, err := l.isDuplicate(ctx, seen, item.ID, l.leagues.Exists)
		if err != nil {
			return fmt.Errorf("check league %d: %w", item.ID, err)
		}
		if dup {
			rep.reject(idx, key, ReasonDuplicateKey, "league_id already committed")
			continue
		}

		item.CreatedAt = l.commitTime(item.CreatedAt)
		if err := l.commit(rep, idx, key, func() error { return l.leagues.Insert(ctx, item) }); err != nil {
			return fmt.Errorf("insert league %d: %w", item.ID, err)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

func (l *Loader) loadTeams(ctx context.Context, rows []staging.Row, rep *Report) error {
	seen := make(map[int64]struct{}, len(rows))
	for idx, row := range rows {
		key := row.Get(staging.ColTeamID)

		item, err := convertTeam(row)
		if err != nil {
			rep.reject(idx, key, ReasonMalformedRequiredField, err.Error())
			continue
		}
		if detail, ok := l.requiredFieldFailure(item); ok {
			rep.reject(idx, key, ReasonMalformedRequiredField, detail)
			continue
		}

		ok, err := l.leagues.Exists(ctx, item.LeagueID)
		if err != nil {
			return fmt.Errorf("check league %d: %w", item.LeagueID, err)
		}
		if !ok {
			rep.reject(idx, key, ReasonMissingForeignKey, fmt.Sprintf("league %d not in production", item.LeagueID))
			continue
		}

		dup, err := l.isDuplicate(ctx, seen, item.ID, l.teams.Exists)
		if err != nil {
			return fmt.Errorf("check team %d: %w", item.ID, err)
		}
		if dup {
			rep.reject(idx, key, ReasonDuplicateKey, "team_id already committed")
			continue
		}

		item.CreatedAt = l.commitTime(item.CreatedAt)
		if err := l.commit(rep, idx, key, func() error { return l.teams.Insert(ctx, item) }); err != nil {
			return fmt.Errorf("insert team %d: %w", item.ID, err)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

func (l *Loader) loadPlayers(ctx context.Context, rows []staging.Row, rep *Report) error {
	seen := make(map[int64]struct{}, len(rows))
	for idx, row := range rows {
		key := row.Get(staging.ColPlayerID)

		item, err := convertPlayer(row)
		if err != nil {
			rep.reject(idx, key, ReasonMalformedRequiredField, err.Error())
			continue
		}
		if detail, ok := l.requiredFieldFailure(item); ok {
			rep.reject(idx, key, ReasonMalformedRequiredField, detail)
			continue
		}

		ok, err := l.teams.Exists(ctx, item.TeamID)
		if err != nil {
			return fmt.Errorf("check team %d: %w", item.TeamID, err)
		}
		if !ok {
			rep.reject(idx, key, ReasonMissingForeignKey, fmt.Sprintf("team %d not in production", item.TeamID))
			continue
		}

		dup, err := l.isDuplicate(ctx, seen, item.ID, l.players.Exists)
		if err != nil {
			return fmt.Errorf("check player %d: %w", item.ID, err)
		}
		if dup {
			rep.reject(idx, key, ReasonDuplicateKey, "player_id already committed")
			continue
		}

		item.CreatedAt = l.commitTime(item.CreatedAt)
		if err := l.commit(rep, idx, key, func() error { return l.players.Insert(ctx, item) }); err != nil {
			return fmt.Errorf("insert player %d: %w", item.ID, err)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

func (l *Loader) loadMatches(ctx context.Context, rows []staging.Row, rep *Report) error {
	seen := make(map[int64]struct{}, len(rows))
	for idx, row := range rows {
		key := row.Get(staging.ColMatchID)

		item, err := convertMatch(row)
		if err != nil {
			rep.reject(idx, key, ReasonMalformedRequiredField, err.Error())
			continue
		}
		if detail, ok := l.requiredFieldFailure(item); ok {
			rep.reject(idx, key, ReasonMalformedRequiredField, detail)
			continue
		}

		if item.SameTeams() {
			rep.reject(idx, key, ReasonInvariantViolation, "home_team_id equals away_team_id")
			continue
		}

		missing, err := l.missingMatchReference(ctx, item)
		if err != nil {
			return err
		}
		if missing != "" {
			rep.reject(idx, key, ReasonMissingForeignKey, missing)
			continue
		}

		dup, err := l.isDuplicate(ctx, seen, item.ID, l.matches.Exists)
		if err != nil {
			return fmt.Errorf("check match %d: %w", item.ID, err)
		}
		if dup {
			rep.reject(idx, key, ReasonDuplicateKey, "match_id already committed")
			continue
		}

		item.CreatedAt = l.commitTime(item.CreatedAt)
		if err := l.commit(rep, idx, key, func() error { return l.matches.Insert(ctx, item) }); err != nil {
			return fmt.Errorf("insert match %d: %w", item.ID, err)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

func (l *Loader) missingMatchReference(ctx context.Context, item match.Match) (string, error) {
	ok, err := l.leagues.Exists(ctx, item.LeagueID)
	if err != nil {
		return "", fmt.Errorf("check league %d: %w", item.LeagueID, err)
	}
	if !ok {
		return fmt.Sprintf("league %d not in production", item.LeagueID), nil
	}

	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		ok, err := l.teams.Exists(ctx, teamID)
		if err != nil {
			return "", fmt.Errorf("check team %d: %w", teamID, err)
		}
		if !ok {
			return fmt.Sprintf("team %d not in production", teamID), nil
		}
	}

	return "", nil
}

// isDuplicate checks the identity against rows already committed in this batch
// and against production storage.
func (l *Loader) isDuplicate(ctx context.Context, seen map[int64]struct{}, id int64, exists func(context.Context, int64) (bool, error)) (bool, error) {
	if _, ok := seen[id]; ok {
		return true, nil
	}
	return exists(ctx, id)
}

// commit inserts one converted row. A store-level duplicate or foreign-key
// rejection can still happen under a concurrent writer; both translate to row
// rejections instead of crashing the batch. Anything else is a storage failure
// and batch-fatal.
func (l *Loader) commit(rep *Report, idx int, key string, insert func() error) error {
	err := insert()
	switch {
	case err == nil:
		rep.accept()
	case crerr.Is(err, store.ErrDuplicateKey):
		rep.reject(idx, key, ReasonDuplicateKey, "identity already committed")
	case crerr.Is(err, store.ErrForeignKeyMissing):
		rep.reject(idx, key, ReasonMissingForeignKey, "referenced row not in production")
	default:
		return err
	}

	return nil
}

func (l *Loader) requiredFieldFailure(item any) (string, bool) {
	err := l.validate.Struct(item)
	if err == nil {
		return "", false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return strings.ToLower(verrs[0].Field()) + " is required", true
	}
	return err.Error(), true
}

func (l *Loader) commitTime(current time.Time) time.Time {
	if !current.IsZero() {
		return current
	}
	return l.now().UTC()
}
