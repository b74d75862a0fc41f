// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var ErrUnknownType = errors.New("unknown database type")

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Applied one statement at a time, in order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS survey_response (
    id TEXT PRIMARY KEY,
    batch_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    word TEXT NOT NULL,
    region TEXT NOT NULL,
    region_key TEXT NOT NULL,
    source TEXT,
    imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_response_region_key ON survey_response(region_key)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_response_batch ON survey_response(batch_id, position)`,
	`CREATE TABLE IF NOT EXISTS stats_snapshot (
    id TEXT PRIMARY KEY,
    computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    created_by TEXT,
    region_count INTEGER NOT NULL,
    payload TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_stats_snapshot_computed_at ON stats_snapshot(computed_at)`,
}
