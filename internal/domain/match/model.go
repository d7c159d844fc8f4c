package match

import (
	"strings"
	"time"
)

// Canonical match statuses. The status column is an open enumeration: values
// outside this set pass through unchanged after trimming.
const (
	StatusScheduled  = "Scheduled"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusPostponed  = "Postponed"
)

// Match is one fixture between two teams of the same league. Scores and
// attendance stay null until the match has been played.
type Match struct {
	ID         int64 `validate:"required"`
	LeagueID   int64 `validate:"required"`
	HomeTeamID int64 `validate:"required"`
	AwayTeamID int64 `validate:"required"`
	Season     string
	MatchDate  *time.Time
	HomeScore  *int
	AwayScore  *int
	Stadium    string
	Status     string
	Attendance *int
	CreatedAt  time.Time
}

// SameTeams reports the home side playing itself, which production storage
// refuses outright.
func (m Match) SameTeams() bool {
	return m.HomeTeamID == m.AwayTeamID
}

// NormalizeStatus maps free-text status values onto the canonical spellings.
// Empty input defaults to Scheduled.
func NormalizeStatus(value string) string {
	status := strings.TrimSpace(value)
	if status == "" {
		return StatusScheduled
	}

	switch strings.ToLower(status) {
	case "scheduled":
		return StatusScheduled
	case "in progress", "in_progress", "live":
		return StatusInProgress
	case "completed", "finished", "full time", "ft":
		return StatusCompleted
	case "postponed":
		return StatusPostponed
	default:
		return status
	}
}
