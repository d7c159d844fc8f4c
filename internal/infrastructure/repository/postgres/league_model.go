package postgres

import "time"

type leagueTableModel struct {
	LeagueID    int64     `db:"league_id"`
	LeagueName  string    `db:"league_name"`
	Country     string    `db:"country"`
	SportType   string    `db:"sport_type"`
	FoundedYear *int      `db:"founded_year"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}
