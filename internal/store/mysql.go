package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL lacks UPDATE ... RETURNING, so rows are re-read after writes.
var mysqlDialect = dialect{
	name: "mysql",
}

// NewMySQLClient connects to an existing MySQL or MariaDB database.
func NewMySQLClient(ctx context.Context, dsn string) (Client, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return nil, configError("mysql dsn is empty (set database.dsn)", nil)
	}
	cfg, err := mysql.ParseDSN(trimmed)
	if err != nil {
		return nil, configError("invalid mysql dsn", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, configError("invalid mysql dsn", err)
	}
	db := sql.OpenDB(connector)
	configurePool(db)
	return newSQLClient(ctx, db, mysqlDialect)
}
