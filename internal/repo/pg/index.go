// Package pg implements the repo interfaces on PostgreSQL. SQL text is
// static except for fragments produced by the sqlf builders; every value
// travels as a positional parameter.
package pg

import (
	"errors"

	"github.com/jackc/pgconn"

	"github.com/rendau/jobly/internal/errs"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// hConstraintErr maps constraint violations surfaced by the store to domain
// errors. The unique constraint stays the authoritative duplicate guard;
// service-level pre-checks only exist for friendlier messages.
func hConstraintErr(err error) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errs.Duplicate
		case pgForeignKeyViolation:
			return errs.ObjectNotFound
		}
	}

	return err
}
