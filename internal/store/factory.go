package store

import (
	"context"
	"fmt"
	"strings"
)

// Options selects and configures a backend.
type Options struct {
	// Driver is one of sqlite, postgres, mysql or rest.
	Driver string
	// Path is the SQLite file.
	Path string
	// DSN is the Postgres or MySQL connection string.
	DSN string
	// URL and APIKey address a PostgREST service.
	URL    string
	APIKey string

	RESTOptions []RESTOption
}

// NewClient opens the backend named by opts.Driver.
func NewClient(ctx context.Context, opts Options) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", "sqlite":
		return NewSQLiteClient(ctx, opts.Path)
	case "postgres":
		return NewPostgresClient(ctx, opts.DSN)
	case "mysql":
		return NewMySQLClient(ctx, opts.DSN)
	case "rest":
		return NewRESTClient(opts.URL, opts.APIKey, opts.RESTOptions...)
	default:
		return nil, configError(fmt.Sprintf("unknown database driver %q", opts.Driver), nil)
	}
}
