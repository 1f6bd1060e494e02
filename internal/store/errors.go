package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"

	appErrors "biodex/internal/errors"
)

// ErrNotFound is wrapped by lookups that matched no row.
var ErrNotFound = errors.New("store: record not found")

func notFound(what string, id any) error {
	return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("%s %v not found", what, id), ErrNotFound)
}

// remoteFailed wraps a driver error. The message is the service's own text
// with driver prefixes stripped where the driver exposes them.
func remoteFailed(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.New(appErrors.CodeNotFound, "record not found", fmt.Errorf("%s: %w", op, ErrNotFound))
	}
	return appErrors.New(appErrors.CodeRemoteFailed, serviceMessage(err), fmt.Errorf("%s: %w", op, err))
}

func serviceMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Message
	}
	return err.Error()
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func configError(msg string, err error) error {
	return appErrors.New(appErrors.CodeConfigurationError, msg, err)
}
