package postgres

import "time"

type teamTableModel struct {
	TeamID      int64     `db:"team_id"`
	LeagueID    int64     `db:"league_id"`
	TeamName    string    `db:"team_name"`
	City        string    `db:"city"`
	Stadium     string    `db:"stadium"`
	FoundedYear *int      `db:"founded_year"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}
