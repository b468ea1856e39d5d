// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "fmt"

// CreateSchema creates the sessions table if it does not exist.
// Safe to call multiple times - uses IF NOT EXISTS. Runs once at
// startup before the server accepts traffic.
func (s *Store) CreateSchema() error {
	schema := schemaPostgres
	if s.dialect == dialectSQLite {
		schema = schemaSQLite
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schemaPostgres = `
-- Sessions: one row per visitor, keyed by the opaque session token.
-- results holds the accumulated question_id -> answer_key map.
CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    results JSONB NOT NULL DEFAULT '{}'::jsonb,
    final_result TEXT,
    name TEXT,
    email TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sessions_final_result ON sessions(final_result);
CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    results TEXT NOT NULL DEFAULT '{}',
    final_result TEXT,
    name TEXT,
    email TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sessions_final_result ON sessions(final_result);
CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
`
