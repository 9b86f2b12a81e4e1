package sqlutil

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// UniqueViolation reports whether err is a Postgres unique violation and, if
// so, the name of the violated constraint.
func UniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// IsUniqueViolationOf reports whether err violates the named constraint.
func IsUniqueViolationOf(err error, constraint string) bool {
	name, ok := UniqueViolation(err)
	return ok && name == constraint
}
