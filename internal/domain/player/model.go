package player

import "time"

// Player is an athlete registered with a team. Date of birth and jersey number
// arrive as free text and stay null when the source value is unusable.
type Player struct {
	ID           int64  `validate:"required"`
	TeamID       int64  `validate:"required"`
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Position     string
	Nationality  string
	DateOfBirth  *time.Time
	JerseyNumber *int
	IsActive     bool
	CreatedAt    time.Time
}
