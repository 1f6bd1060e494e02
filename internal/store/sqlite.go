package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

var sqliteBootstrap = []string{
	`CREATE TABLE IF NOT EXISTS species (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author TEXT NOT NULL,
		scientific_name TEXT NOT NULL,
		common_name TEXT,
		kingdom TEXT NOT NULL CHECK (kingdom IN ('Animalia', 'Plantae', 'Fungi', 'Protista', 'Archaea', 'Bacteria')),
		total_population INTEGER CHECK (total_population IS NULL OR total_population >= 1),
		image TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		biography TEXT
	)`,
}

var sqliteDialect = dialect{
	name:      "sqlite",
	returning: true,
	bootstrap: sqliteBootstrap,
}

// NewSQLiteClient opens (creating if needed) the SQLite database at path.
// Missing tables are created; existing tables are used as they are.
func NewSQLiteClient(ctx context.Context, path string) (Client, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, configError("sqlite database path is empty", nil)
	}
	if trimmed != MemoryPath {
		abs, err := filepath.Abs(trimmed)
		if err != nil {
			return nil, configError(fmt.Sprintf("resolve sqlite path %s", trimmed), err)
		}
		trimmed = abs
		//nolint:gosec // G301: database directory next to user config
		if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
			return nil, configError(fmt.Sprintf("create database directory for %s", trimmed), err)
		}
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(trimmed))
	if err != nil {
		return nil, remoteFailed("open sqlite db", err)
	}
	// One connection keeps :memory: databases alive and serialises writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return newSQLClient(ctx, db, sqliteDialect)
}

// buildSQLiteDSN creates a read-write WAL DSN for the given absolute path.
func buildSQLiteDSN(dbPath string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "foreign_keys(1)")
	if dbPath == MemoryPath {
		return "file::memory:?" + q.Encode()
	}
	q.Add("_pragma", "journal_mode(WAL)")
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	u.RawQuery = q.Encode()
	return u.String()
}
