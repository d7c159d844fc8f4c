package store

import crerr "github.com/cockroachdb/errors"

// Sentinel errors shared by every production store implementation. Repository
// implementations mark their own failures with these so callers can translate
// constraint violations without knowing the backend.
var (
	ErrDuplicateKey      = crerr.New("duplicate primary key")
	ErrForeignKeyMissing = crerr.New("referenced row does not exist")
	ErrUnavailable       = crerr.New("store unavailable")
)
