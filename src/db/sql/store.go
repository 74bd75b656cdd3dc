package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"finance-api/src/db"
	"finance-api/src/errs"
)

// Store runs the ledger queries against one session. It is not safe for
// concurrent use and lives for a single request.
type Store struct {
	q          db.Querier
	now        func() time.Time
	categories *db.CategoryCache
}

// NewStore builds a store over q. now supplies the current instant for
// month boundaries and defaults; nil means time.Now.
func NewStore(q db.Querier, now func() time.Time, categories *db.CategoryCache) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{q: q, now: now, categories: categories}
}

type scanner interface {
	Scan(dest ...any) error
}

// wrap classifies a database error. Constraint and input-format violations
// are the client's fault; everything else is a persistence failure.
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.E(errs.NotFound, op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", // not_null_violation
			"23503", // foreign_key_violation
			"23514", // check_violation
			"22P02", // invalid_text_representation
			"22003", // numeric_value_out_of_range
			"22007", // invalid_datetime_format
			"22008": // datetime_field_overflow
			return errs.E(errs.Validation, op, err)
		}
	}
	return errs.E(errs.Persistence, op, err)
}

func notFound(op, entity string, id int64) error {
	return errs.E(errs.NotFound, op, fmt.Errorf("%s %d not found", entity, id))
}
