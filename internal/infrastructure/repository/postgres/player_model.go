package postgres

import "time"

type playerTableModel struct {
	PlayerID     int64      `db:"player_id"`
	TeamID       int64      `db:"team_id"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Position     string     `db:"position"`
	Nationality  string     `db:"nationality"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
	JerseyNumber *int       `db:"jersey_number"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
}
