package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidConnString = errors.New("invalid postgres connection string")
	ErrNotReady          = errors.New("postgres did not become ready within the retry budget")
	ErrMigrateFailed     = errors.New("failed to apply migrations")
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
)

// IsNotFound reports whether err means a query matched no rows.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}
