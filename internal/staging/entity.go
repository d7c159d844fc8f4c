package staging

// Entity names one staged record type.
type Entity string

const (
	EntityLeague Entity = "league"
	EntityTeam   Entity = "team"
	EntityPlayer Entity = "player"
	EntityMatch  Entity = "match"
)

// LoadOrder is the sequence production loads must follow so that foreign keys
// resolve: leagues before teams, teams before players and matches. Player and
// match share no dependency on each other and may load concurrently once team
// is committed.
func LoadOrder() []Entity {
	return []Entity{EntityLeague, EntityTeam, EntityPlayer, EntityMatch}
}

// Table returns the staging table backing the entity.
func (e Entity) Table() string {
	switch e {
	case EntityLeague:
		return "stg_leagues"
	case EntityTeam:
		return "stg_teams"
	case EntityPlayer:
		return "stg_players"
	case EntityMatch:
		return "stg_matches"
	default:
		return ""
	}
}

// Columns returns the staging column set for the entity, in table order.
func (e Entity) Columns() []string {
	switch e {
	case EntityLeague:
		return []string{ColLeagueID, ColLeagueName, ColCountry, ColSportType, ColFoundedYear, ColIsActive}
	case EntityTeam:
		return []string{ColTeamID, ColLeagueID, ColTeamName, ColCity, ColStadium, ColFoundedYear, ColIsActive}
	case EntityPlayer:
		return []string{ColPlayerID, ColTeamID, ColFirstName, ColLastName, ColPosition, ColNationality, ColDateOfBirth, ColJerseyNumber, ColIsActive}
	case EntityMatch:
		return []string{ColMatchID, ColLeagueID, ColSeason, ColMatchDate, ColHomeTeamID, ColAwayTeamID, ColHomeScore, ColAwayScore, ColStadium, ColMatchStatus, ColAttendance}
	default:
		return nil
	}
}
