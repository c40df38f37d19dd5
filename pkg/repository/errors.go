package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// MapError wraps a datastore failure in the domain's sentinel so callers can
// classify it with errors.Is. PostgreSQL errors keep their message and SQLSTATE
// code; anything else keeps its original text.
func MapError(err error, sentinel error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s (SQLSTATE %s)", sentinel, pgErr.Message, pgErr.Code)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}
