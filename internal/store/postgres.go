package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/lib/pq" // Postgres driver
)

var postgresDialect = dialect{
	name:      "postgres",
	numbered:  true,
	returning: true,
}

// NewPostgresClient connects to an existing Postgres database. Tables are
// expected to exist; nothing is created.
func NewPostgresClient(ctx context.Context, dsn string) (Client, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return nil, configError("postgres dsn is empty (set database.dsn)", nil)
	}
	db, err := sql.Open("postgres", trimmed)
	if err != nil {
		return nil, configError("invalid postgres dsn", err)
	}
	configurePool(db)
	return newSQLClient(ctx, db, postgresDialect)
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
}
