package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict marks a unique-constraint violation raised by a storage
// backend that does not speak the PostgreSQL wire protocol (the in-memory
// store). SQL stores surface the driver error unchanged.
var ErrConflict = errors.New("unique constraint violation")

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// IsConflict reports whether err represents a unique-constraint violation,
// from either storage backend.
func IsConflict(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
