package loader

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/infrastructure/repository/memory"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

func TestOrchestrator_RunAllSeed(t *testing.T) {
	ldr, stores := newTestLoader()
	orch := NewOrchestrator(ldr, logging.NewNop())

	result, err := orch.RunAll(context.Background(), memory.SeedStagingSource())
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)
	require.Len(t, result.Reports, 4)

	leagues, ok := result.Report(staging.EntityLeague)
	require.True(t, ok)
	require.Equal(t, 2, leagues.Accepted)
	require.Equal(t, 0, leagues.Rejected)

	// Team 12 references league 99, which never staged.
	teams, _ := result.Report(staging.EntityTeam)
	require.Equal(t, 2, teams.Accepted)
	require.Equal(t, 1, teams.Rejected)
	require.Equal(t, ReasonMissingForeignKey, teams.Rejections[0].Reason)

	players, _ := result.Report(staging.EntityPlayer)
	require.Equal(t, 2, players.Accepted)

	matches, _ := result.Report(staging.EntityMatch)
	require.Equal(t, 2, matches.Accepted)

	// Flag cleansing: "maybe" is not in the accepted-true set.
	inactive, found := stores.leagues.Get(2)
	require.True(t, found)
	require.False(t, inactive.IsActive)

	// The unparseable date of birth stayed null without rejecting the row.
	salah, found := stores.players.Get(101)
	require.True(t, found)
	require.Nil(t, salah.DateOfBirth)

	// The unparseable match date stayed null and status defaulted.
	late, found := stores.matches.Get(1001)
	require.True(t, found)
	require.Nil(t, late.MatchDate)
	require.Equal(t, "Scheduled", late.Status)
}

func TestOrchestrator_RunAllIsReportedNotMergedOnRerun(t *testing.T) {
	ldr, _ := newTestLoader()
	orch := NewOrchestrator(ldr, logging.NewNop())
	src := memory.SeedStagingSource()

	_, err := orch.RunAll(context.Background(), src)
	require.NoError(t, err)

	second, err := orch.RunAll(context.Background(), src)
	require.NoError(t, err)

	leagues, _ := second.Report(staging.EntityLeague)
	require.Equal(t, 0, leagues.Accepted)
	require.Equal(t, 2, leagues.Rejected)
	for _, rej := range leagues.Rejections {
		require.Equal(t, ReasonDuplicateKey, rej.Reason)
	}
}

type failingSource struct {
	fail staging.Entity
	base staging.Source
}

func (s failingSource) Rows(ctx context.Context, entity staging.Entity) ([]staging.Row, error) {
	if entity == s.fail {
		return nil, fmt.Errorf("staging storage offline")
	}
	return s.base.Rows(ctx, entity)
}

func TestOrchestrator_StagingFailureStopsBeforeDependents(t *testing.T) {
	ldr, stores := newTestLoader()
	orch := NewOrchestrator(ldr, logging.NewNop())

	src := failingSource{fail: staging.EntityTeam, base: memory.SeedStagingSource()}
	result, err := orch.RunAll(context.Background(), src)
	require.Error(t, err)

	// Leagues committed before the abort and stay reported.
	leagues, ok := result.Report(staging.EntityLeague)
	require.True(t, ok)
	require.Equal(t, 2, leagues.Accepted)

	// Dependent stages never ran, so no player snuck in without its team.
	_, ran := result.Report(staging.EntityPlayer)
	require.False(t, ran)
	if _, found := stores.players.Get(100); found {
		t.Fatalf("player committed without its team dependency")
	}
}
