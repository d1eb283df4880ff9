package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrBookingOverlap is returned when the in-transaction admission check
	// finds a conflicting stay.
	ErrBookingOverlap = errors.New("repository: overlapping booking")

	// ErrStateConflict is returned when a guarded status transition matched
	// no row, i.e. the booking moved on (or away) concurrently.
	ErrStateConflict = errors.New("repository: booking not in expected state")
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// the index-level backstop behind the admission and one-review invariants.
// Postgres reports SQLSTATE 23505 through pgconn; the SQLite driver only
// gives us the message text.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "duplicate key value violates unique constraint")
}
