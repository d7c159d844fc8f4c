package team

import "time"

// Team is a club registered in a league.
type Team struct {
	ID          int64  `validate:"required"`
	LeagueID    int64  `validate:"required"`
	Name        string `validate:"required"`
	City        string
	Stadium     string
	FoundedYear *int
	IsActive    bool
	CreatedAt   time.Time
}
