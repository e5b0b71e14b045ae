package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrDuplicate signals a unique-constraint violation at the storage layer.
// Callers decide whether it surfaces as a conflict or self-heals (the tag
// resolver re-fetches instead of failing).
var ErrDuplicate = errors.New("duplicate key")

// uniqueViolation is the PostgreSQL error code for unique-constraint violations
const uniqueViolation = "23505"

// translateError maps driver-level errors to repository sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	}
	return err
}
