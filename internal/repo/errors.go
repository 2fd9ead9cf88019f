package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/fyyur/internal/domain"
)

// stringDataRightTruncation is raised when a value is wider than its VARCHAR column.
const stringDataRightTruncation = "22001"

// mapError translates driver errors into domain sentinels.
//   - pgx.ErrNoRows becomes domain.ErrNotFound.
//   - Integrity violations (SQLSTATE class 23) and over-long values become
//     domain.ErrConstraint, keeping the Postgres detail in the message.
//   - Everything else is returned unchanged (connection loss, timeouts).
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "23") || pgErr.Code == stringDataRightTruncation {
			return fmt.Errorf("%w: %s (%s)", domain.ErrConstraint, pgErr.Message, pgErr.ConstraintName)
		}
	}
	return err
}

// likeEscaper escapes LIKE metacharacters using the default backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE/ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
