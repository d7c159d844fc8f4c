package loader

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/league"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/infrastructure/repository/memory"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

type testStores struct {
	leagues *memory.LeagueRepository
	teams   *memory.TeamRepository
	players *memory.PlayerRepository
	matches *memory.MatchRepository
}

func newTestLoader() (*Loader, testStores) {
	leagues := memory.NewLeagueRepository()
	teams := memory.NewTeamRepository(leagues)
	players := memory.NewPlayerRepository(teams)
	matches := memory.NewMatchRepository(leagues, teams)

	return New(leagues, teams, players, matches, logging.NewNop()), testStores{
		leagues: leagues,
		teams:   teams,
		players: players,
		matches: matches,
	}
}

func leagueRow(id, name, country, sport, founded, active string) staging.Row {
	return staging.Row{
		staging.ColLeagueID:    id,
		staging.ColLeagueName:  name,
		staging.ColCountry:     country,
		staging.ColSportType:   sport,
		staging.ColFoundedYear: founded,
		staging.ColIsActive:    active,
	}
}

func TestLoad_LeagueFlagNormalization(t *testing.T) {
	ldr, stores := newTestLoader()

	rep, err := ldr.Load(context.Background(), staging.EntityLeague, []staging.Row{
		leagueRow("1", "EPL", "England", "Football", "1992", "Yes"),
		leagueRow("2", "X", "Y", "Football", "2000", "maybe"),
	})
	if err != nil {
		t.Fatalf("load leagues: %v", err)
	}
	if rep.Accepted != 2 || rep.Rejected != 0 {
		t.Fatalf("unexpected report: %s", rep.Summary())
	}

	epl, ok := stores.leagues.Get(1)
	if !ok || !epl.IsActive {
		t.Fatalf("league 1 should be committed active, got %+v", epl)
	}
	if epl.CreatedAt.IsZero() {
		t.Fatalf("league 1 missing creation timestamp")
	}

	other, ok := stores.leagues.Get(2)
	if !ok || other.IsActive {
		t.Fatalf("league 2 should be committed inactive, got %+v", other)
	}
}

func TestLoad_DuplicateReloadKeepsExistingRow(t *testing.T) {
	ldr, stores := newTestLoader()
	ctx := context.Background()

	if _, err := ldr.Load(ctx, staging.EntityLeague, []staging.Row{
		leagueRow("1", "EPL", "England", "Football", "1992", "Yes"),
	}); err != nil {
		t.Fatalf("first load: %v", err)
	}

	rep, err := ldr.Load(ctx, staging.EntityLeague, []staging.Row{
		leagueRow("1", "Renamed League", "France", "Football", "1990", "No"),
	})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if rep.Accepted != 0 || rep.Rejected != 1 {
		t.Fatalf("unexpected report: %s", rep.Summary())
	}
	if rep.Rejections[0].Reason != ReasonDuplicateKey {
		t.Fatalf("expected DUPLICATE_KEY, got %s", rep.Rejections[0].Reason)
	}

	existing, _ := stores.leagues.Get(1)
	if existing.Name != "EPL" || !existing.IsActive {
		t.Fatalf("existing row was modified: %+v", existing)
	}
}

func TestLoad_DuplicateWithinBatch(t *testing.T) {
	ldr, _ := newTestLoader()

	rep, err := ldr.Load(context.Background(), staging.EntityLeague, []staging.Row{
		leagueRow("5", "A", "", "", "", "1"),
		leagueRow("5", "B", "", "", "", "0"),
	})
	if err != nil {
		t.Fatalf("load leagues: %v", err)
	}
	if rep.Accepted != 1 || rep.Rejected != 1 {
		t.Fatalf("unexpected report: %s", rep.Summary())
	}
	if rep.Rejections[0].Row != 1 || rep.Rejections[0].Reason != ReasonDuplicateKey {
		t.Fatalf("unexpected rejection: %+v", rep.Rejections[0])
	}
}

func TestLoad_TeamMissingLeaguePartialBatch(t *testing.T) {
	ldr, _ := newTestLoader()
	ctx := context.Background()

	if _, err := ldr.Load(ctx, staging.EntityLeague, []staging.Row{
		leagueRow("1", "EPL", "England", "Football", "1992", "Yes"),
	}); err != nil {
		t.Fatalf("seed league: %v", err)
	}

	rep, err := ldr.Load(ctx, staging.EntityTeam, []staging.Row{
		{staging.ColTeamID: "10", staging.ColLeagueID: "1", staging.ColTeamName: "Arsenal"},
		{staging.ColTeamID: "11", staging.ColLeagueID: "99", staging.ColTeamName: "Orphan FC"},
		{staging.ColTeamID: "12", staging.ColLeagueID: "1", staging.ColTeamName: "Liverpool"},
	})
	if err != nil {
		t.Fatalf("load teams: %v", err)
	}

	if rep.Accepted != 2 || rep.Rejected != 1 {
		t.Fatalf("unexpected report: %s", rep.Summary())
	}
	rej := rep.Rejections[0]
	if rej.Row != 1 || rej.Key != "11" || rej.Reason != ReasonMissingForeignKey {
		t.Fatalf("unexpected rejection: %+v", rej)
	}
}

func TestLoad_MatchSameTeamInvariant(t *testing.T) {
	ldr, stores := newTestLoader()
	ctx := context.Background()
	seedLeagueAndTeams(t, ldr)

	rep, err := ldr.Load(ctx, staging.EntityMatch, []staging.Row{
		{
			staging.ColMatchID:    "1000",
			staging.ColLeagueID:   "1",
			staging.ColHomeTeamID: "10",
			staging.ColAwayTeamID: "10",
		},
	})
	if err != nil {
		t.Fatalf("load matches: %v", err)
	}
	if rep.Rejected != 1 || rep.Rejections[0].Reason != ReasonInvariantViolation {
		t.Fatalf("expected INVARIANT_VIOLATION, got %s", rep.Summary())
	}
	if _, ok := stores.matches.Get(1000); ok {
		t.Fatalf("match must not be committed")
	}
}

func TestLoad_MatchInvalidDateAccepted(t *testing.T) {
	ldr, stores := newTestLoader()
	ctx := context.Background()
	seedLeagueAndTeams(t, ldr)

	rep, err := ldr.Load(ctx, staging.EntityMatch, []staging.Row{
		{
			staging.ColMatchID:    "1001",
			staging.ColLeagueID:   "1",
			staging.ColHomeTeamID: "10",
			staging.ColAwayTeamID: "11",
			staging.ColMatchDate:  "2024-99-99",
		},
	})
	if err != nil {
		t.Fatalf("load matches: %v", err)
	}
	if rep.Accepted != 1 {
		t.Fatalf("invalid date must not reject the row: %s", rep.Summary())
	}

	committed, _ := stores.matches.Get(1001)
	if committed.MatchDate != nil {
		t.Fatalf("expected null match date, got %v", committed.MatchDate)
	}
}

func TestLoad_MalformedIdentity(t *testing.T) {
	ldr, _ := newTestLoader()

	rep, err := ldr.Load(context.Background(), staging.EntityLeague, []staging.Row{
		leagueRow("not-a-number", "EPL", "", "", "", "Yes"),
		leagueRow("", "EPL", "", "", "", "Yes"),
	})
	if err != nil {
		t.Fatalf("load leagues: %v", err)
	}
	if rep.Rejected != 2 {
		t.Fatalf("unexpected report: %s", rep.Summary())
	}
	for _, rej := range rep.Rejections {
		if rej.Reason != ReasonMalformedRequiredField {
			t.Fatalf("expected MALFORMED_REQUIRED_FIELD, got %+v", rej)
		}
	}
}

func TestLoad_MissingRequiredName(t *testing.T) {
	ldr, _ := newTestLoader()

	rep, err := ldr.Load(context.Background(), staging.EntityLeague, []staging.Row{
		leagueRow("3", "", "England", "Football", "", "Yes"),
	})
	if err != nil {
		t.Fatalf("load leagues: %v", err)
	}
	if rep.Rejected != 1 || rep.Rejections[0].Reason != ReasonMalformedRequiredField {
		t.Fatalf("expected MALFORMED_REQUIRED_FIELD, got %s", rep.Summary())
	}
}

func TestLoad_UnknownEntity(t *testing.T) {
	ldr, _ := newTestLoader()

	if _, err := ldr.Load(context.Background(), staging.Entity("stadium"), nil); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity, got %v", err)
	}
}

// failingLeagueRepo simulates a storage outage.
type failingLeagueRepo struct{}

func (failingLeagueRepo) Insert(context.Context, league.League) error {
	return crerr.Wrap(store.ErrUnavailable, "connection refused")
}

func (failingLeagueRepo) Exists(context.Context, int64) (bool, error) {
	return false, crerr.Wrap(store.ErrUnavailable, "connection refused")
}

func TestLoad_StorageOutageAbortsBatch(t *testing.T) {
	ldr := New(failingLeagueRepo{}, nil, nil, nil, logging.NewNop())

	rep, err := ldr.Load(context.Background(), staging.EntityLeague, []staging.Row{
		leagueRow("1", "EPL", "", "", "", "Yes"),
		leagueRow("2", "X", "", "", "", "No"),
	})
	if err == nil {
		t.Fatalf("expected batch-fatal error")
	}
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("outage must surface as store.ErrUnavailable, got %v", err)
	}
	if rep.Accepted != 0 {
		t.Fatalf("no rows should commit during an outage: %s", rep.Summary())
	}
}

func seedLeagueAndTeams(t *testing.T, ldr *Loader) {
	t.Helper()
	ctx := context.Background()

	if _, err := ldr.Load(ctx, staging.EntityLeague, []staging.Row{
		leagueRow("1", "EPL", "England", "Football", "1992", "Yes"),
	}); err != nil {
		t.Fatalf("seed league: %v", err)
	}
	if _, err := ldr.Load(ctx, staging.EntityTeam, []staging.Row{
		{staging.ColTeamID: "10", staging.ColLeagueID: "1", staging.ColTeamName: "Arsenal"},
		{staging.ColTeamID: "11", staging.ColLeagueID: "1", staging.ColTeamName: "Liverpool"},
	}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}
}
