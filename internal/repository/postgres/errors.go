package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const (
	UsersUsernameConstraint    = "users_username_key"
	ProfilesUsernameConstraint = "profiles_username_key"
	ProfilesUserIDConstraint   = "profiles_user_id_key"
)

// IsUniqueViolation reports whether err is a unique-constraint violation on
// the named constraint. The database constraint is the source of truth for
// username uniqueness; availability pre-checks are a UX hint only.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
}
