package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/upb/course-registry/repositories"
)

// uniqueViolation is the postgres error code for a uniqueness constraint
// violation at write time.
const uniqueViolation = "23505"

// translateError maps driver-level errors onto the repository sentinels so
// callers can branch with errors.Is. A unique-constraint violation becomes
// repositories.ErrDuplicate regardless of whether the caller pre-checked:
// this is what turns a lost insert race into an ordinary conflict.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return fmt.Errorf("%s: %w", op, repositories.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
