package postgres

import "time"

type matchTableModel struct {
	MatchID     int64      `db:"match_id"`
	LeagueID    int64      `db:"league_id"`
	Season      string     `db:"season"`
	MatchDate   *time.Time `db:"match_date"`
	HomeTeamID  int64      `db:"home_team_id"`
	AwayTeamID  int64      `db:"away_team_id"`
	HomeScore   *int       `db:"home_score"`
	AwayScore   *int       `db:"away_score"`
	Stadium     string     `db:"stadium"`
	MatchStatus string     `db:"match_status"`
	Attendance  *int       `db:"attendance"`
	CreatedAt   time.Time  `db:"created_at"`
}
