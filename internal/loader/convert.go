package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/league"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/match"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/player"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/team"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// dateLayout is the only accepted date format in staged exports.
const dateLayout = "2006-01-02"

// ParseBooleanFlag maps raw flag text to a boolean. Only 1/Y/Yes/True (any
// case, trimmed) count as true; everything else, including empty and
// unrecognized text, is false. The silent false default is intentional and
// mirrors the warehouse cleansing scripts: an unparseable flag is
// indistinguishable from an explicit false.
func ParseBooleanFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "y", "yes", "true":
		return true
	default:
		return false
	}
}

// ParseDate converts ISO-formatted date text. Unparseable or empty input
// yields nil rather than an error; dates are never a hard requirement.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// ParseInt converts integer text, yielding nil on unparseable input.
func ParseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// parseIdentity converts a required integer identity column. Unlike the
// nullable parsers this one fails, and the loader reports the failure as
// MALFORMED_REQUIRED_FIELD.
func parseIdentity(row staging.Row, column string) (int64, error) {
	raw := row.Get(column)
	if raw == "" {
		return 0, fmt.Errorf("%s is empty", column)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not numeric", column, raw)
	}
	return id, nil
}

func convertLeague(row staging.Row) (league.League, error) {
	id, err := parseIdentity(row, staging.ColLeagueID)
	if err != nil {
		return league.League{}, err
	}

	return league.League{
		ID:          id,
		Name:        row.Get(staging.ColLeagueName),
		Country:     row.Get(staging.ColCountry),
		SportType:   row.Get(staging.ColSportType),
		FoundedYear: ParseInt(row.Get(staging.ColFoundedYear)),
		IsActive:    ParseBooleanFlag(row.Get(staging.ColIsActive)),
	}, nil
}

func convertTeam(row staging.Row) (team.Team, error) {
	id, err := parseIdentity(row, staging.ColTeamID)
	if err != nil {
		return team.Team{}, err
	}
	leagueID, err := parseIdentity(row, staging.ColLeagueID)
	if err != nil {
		return team.Team{}, err
	}

	return team.Team{
		ID:          id,
		LeagueID:    leagueID,
		Name:        row.Get(staging.ColTeamName),
		City:        row.Get(staging.ColCity),
		Stadium:     row.Get(staging.ColStadium),
		FoundedYear: ParseInt(row.Get(staging.ColFoundedYear)),
		IsActive:    ParseBooleanFlag(row.Get(staging.ColIsActive)),
	}, nil
}

func convertPlayer(row staging.Row) (player.Player, error) {
	id, err := parseIdentity(row, staging.ColPlayerID)
	if err != nil {
		return player.Player{}, err
	}
	teamID, err := parseIdentity(row, staging.ColTeamID)
	if err != nil {
		return player.Player{}, err
	}

	return player.Player{
		ID:           id,
		TeamID:       teamID,
		FirstName:    row.Get(staging.ColFirstName),
		LastName:     row.Get(staging.ColLastName),
		Position:     row.Get(staging.ColPosition),
		Nationality:  row.Get(staging.ColNationality),
		DateOfBirth:  ParseDate(row.Get(staging.ColDateOfBirth)),
		JerseyNumber: ParseInt(row.Get(staging.ColJerseyNumber)),
		IsActive:     ParseBooleanFlag(row.Get(staging.ColIsActive)),
	}, nil
}

func convertMatch(row staging.Row) (match.Match, error) {
	id, err := parseIdentity(row, staging.ColMatchID)
	if err != nil {
		return match.Match{}, err
	}
	leagueID, err := parseIdentity(row, staging.ColLeagueID)
	if err != nil {
		return match.Match{}, err
	}
	homeID, err := parseIdentity(row, staging.ColHomeTeamID)
	if err != nil {
		return match.Match{}, err
	}
	awayID, err := parseIdentity(row, staging.ColAwayTeamID)
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		ID:         id,
		LeagueID:   leagueID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Season:     row.Get(staging.ColSeason),
		MatchDate:  ParseDate(row.Get(staging.ColMatchDate)),
		HomeScore:  ParseInt(row.Get(staging.ColHomeScore)),
		AwayScore:  ParseInt(row.Get(staging.ColAwayScore)),
		Stadium:    row.Get(staging.ColStadium),
		Status:     match.NormalizeStatus(row.Get(staging.ColMatchStatus)),
		Attendance: ParseInt(row.Get(staging.ColAttendance)),
	}, nil
}
