package league

import "time"

// League is a competition that teams and matches belong to. Rows are immutable
// once committed except for the active flag, which later loads may update.
type League struct {
	ID          int64  `validate:"required"`
	Name        string `validate:"required"`
	Country     string
	SportType   string
	FoundedYear *int
	IsActive    bool
	CreatedAt   time.Time
}
