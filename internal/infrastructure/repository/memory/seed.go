package memory

import (
	"context"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// SeedStagingSource returns a staging source pre-filled with a small dirty
// sample batch: mixed flag spellings, an unparseable date and a dangling
// foreign key, the shapes real staged exports arrive in.
func SeedStagingSource() *StagingSource {
	src := NewStagingSource()
	ctx := context.Background()

	_ = src.WriteBatch(ctx, staging.EntityLeague, []staging.Row{
		{
			staging.ColLeagueID:    "1",
			staging.ColLeagueName:  "EPL",
			staging.ColCountry:     "England",
			staging.ColSportType:   "Football",
			staging.ColFoundedYear: "1992",
			staging.ColIsActive:    "Yes",
		},
		{
			staging.ColLeagueID:    "2",
			staging.ColLeagueName:  "La Liga",
			staging.ColCountry:     "Spain",
			staging.ColSportType:   "Football",
			staging.ColFoundedYear: "1929",
			staging.ColIsActive:    "maybe",
		},
	})

	_ = src.WriteBatch(ctx, staging.EntityTeam, []staging.Row{
		{
			staging.ColTeamID:      "10",
			staging.ColLeagueID:    "1",
			staging.ColTeamName:    "Arsenal",
			staging.ColCity:        "London",
			staging.ColStadium:     "Emirates Stadium",
			staging.ColFoundedYear: "1886",
			staging.ColIsActive:    "1",
		},
		{
			staging.ColTeamID:      "11",
			staging.ColLeagueID:    "1",
			staging.ColTeamName:    "Liverpool",
			staging.ColCity:        "Liverpool",
			staging.ColStadium:     "Anfield",
			staging.ColFoundedYear: "1892",
			staging.ColIsActive:    "true",
		},
		{
			staging.ColTeamID:      "12",
			staging.ColLeagueID:    "99",
			staging.ColTeamName:    "Orphan FC",
			staging.ColCity:        "Nowhere",
			staging.ColIsActive:    "Y",
		},
	})

	_ = src.WriteBatch(ctx, staging.EntityPlayer, []staging.Row{
		{
			staging.ColPlayerID:     "100",
			staging.ColTeamID:       "10",
			staging.ColFirstName:    "Bukayo",
			staging.ColLastName:     "Saka",
			staging.ColPosition:     "Winger",
			staging.ColNationality:  "England",
			staging.ColDateOfBirth:  "2001-09-05",
			staging.ColJerseyNumber: "7",
			staging.ColIsActive:     "Yes",
		},
		{
			staging.ColPlayerID:     "101",
			staging.ColTeamID:       "11",
			staging.ColFirstName:    "Mohamed",
			staging.ColLastName:     "Salah",
			staging.ColPosition:     "Forward",
			staging.ColNationality:  "Egypt",
			staging.ColDateOfBirth:  "unknown",
			staging.ColJerseyNumber: "11",
			staging.ColIsActive:     "Y",
		},
	})

	_ = src.WriteBatch(ctx, staging.EntityMatch, []staging.Row{
		{
			staging.ColMatchID:     "1000",
			staging.ColLeagueID:    "1",
			staging.ColSeason:      "2024/25",
			staging.ColMatchDate:   "2024-08-17",
			staging.ColHomeTeamID:  "10",
			staging.ColAwayTeamID:  "11",
			staging.ColHomeScore:   "2",
			staging.ColAwayScore:   "2",
			staging.ColStadium:     "Emirates Stadium",
			staging.ColMatchStatus: "Completed",
			staging.ColAttendance:  "60231",
		},
		{
			staging.ColMatchID:     "1001",
			staging.ColLeagueID:    "1",
			staging.ColSeason:      "2024/25",
			staging.ColMatchDate:   "2024-99-99",
			staging.ColHomeTeamID:  "11",
			staging.ColAwayTeamID:  "10",
			staging.ColMatchStatus: "",
		},
	})

	return src
}
