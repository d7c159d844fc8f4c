package staging

import (
	"context"
	"strings"
)

// Staging column names shared by the staging tables, the CSV intake and the
// per-entity converters.
const (
	ColLeagueID     = "league_id"
	ColLeagueName   = "league_name"
	ColCountry      = "country"
	ColSportType    = "sport_type"
	ColFoundedYear  = "founded_year"
	ColIsActive     = "is_active"
	ColTeamID       = "team_id"
	ColTeamName     = "team_name"
	ColCity         = "city"
	ColStadium      = "stadium"
	ColPlayerID     = "player_id"
	ColFirstName    = "first_name"
	ColLastName     = "last_name"
	ColPosition     = "position"
	ColNationality  = "nationality"
	ColDateOfBirth  = "date_of_birth"
	ColJerseyNumber = "jersey_number"
	ColMatchID      = "match_id"
	ColSeason       = "season"
	ColMatchDate    = "match_date"
	ColHomeTeamID   = "home_team_id"
	ColAwayTeamID   = "away_team_id"
	ColHomeScore    = "home_score"
	ColAwayScore    = "away_score"
	ColMatchStatus  = "match_status"
	ColAttendance   = "attendance"
)

// Row is one staged record: column name to raw text, no typing, no
// constraints. Absent columns read as empty.
type Row map[string]string

// Get returns the trimmed raw value of a column.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Source supplies staged batches for production loads.
type Source interface {
	Rows(ctx context.Context, entity Entity) ([]Row, error)
}
