// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an operation requires an existing
// session row and none matches the given id.
var ErrNotFound = errors.New("session not found")

// Session is the durable per-visitor record: accumulated answers plus
// the optional final verdict and contact details.
type Session struct {
	ID          string
	Answers     map[string]string
	FinalResult *string
	Name        *string
	Email       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store is the session access layer. All per-session mutations are
// single-statement upserts keyed on the session_id uniqueness
// constraint, so concurrent requests for the same session cannot lose
// updates.
type Store struct {
	db      *sql.DB
	dialect dialect
}

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// Open connects to the configured database and bounds the connection
// pool. databaseType is "postgres" or "sqlite".
func Open(databaseType, databaseURL string) (*Store, error) {
	var driver string
	var d dialect

	switch databaseType {
	case "postgres":
		driver, d = "postgres", dialectPostgres
	case "sqlite":
		driver, d = "sqlite", dialectSQLite
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{db: db, dialect: d}, nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying pool for schema bootstrap and tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Get fetches a session by id. Returns ErrNotFound when no row exists.
func (s *Store) Get(sessionID string) (*Session, error) {
	row := s.db.QueryRow(`
		SELECT session_id, results, final_result, name, email, created_at, updated_at
		FROM sessions
		WHERE session_id = $1
	`, sessionID)

	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return sess, nil
}

// UpsertAnswer merges {questionID: answerKey} into the session's answer
// map. Creates the row if absent; an existing value for the same
// question id is overwritten (last write wins). Single atomic statement.
func (s *Store) UpsertAnswer(sessionID, questionID, answerKey string) error {
	patch, err := json.Marshal(map[string]string{questionID: answerKey})
	if err != nil {
		return fmt.Errorf("failed to encode answer patch: %w", err)
	}

	var query string
	switch s.dialect {
	case dialectPostgres:
		query = `
			INSERT INTO sessions (session_id, results)
			VALUES ($1, $2::jsonb)
			ON CONFLICT (session_id)
			DO UPDATE SET results = sessions.results || excluded.results, updated_at = NOW()
		`
	case dialectSQLite:
		query = `
			INSERT INTO sessions (session_id, results)
			VALUES ($1, $2)
			ON CONFLICT (session_id)
			DO UPDATE SET results = json_patch(sessions.results, excluded.results), updated_at = CURRENT_TIMESTAMP
		`
	}

	if _, err := s.db.Exec(query, sessionID, string(patch)); err != nil {
		return fmt.Errorf("failed to upsert answer: %w", err)
	}
	return nil
}

// UpsertFinalResult records the terminal result for a session. The row
// materializes if the visitor jumped straight to a result URL.
func (s *Store) UpsertFinalResult(sessionID, resultID string) error {
	query := `
		INSERT INTO sessions (session_id, final_result)
		VALUES ($1, $2)
		ON CONFLICT (session_id)
		DO UPDATE SET final_result = excluded.final_result, updated_at = NOW()
	`
	if s.dialect == dialectSQLite {
		query = `
			INSERT INTO sessions (session_id, final_result)
			VALUES ($1, $2)
			ON CONFLICT (session_id)
			DO UPDATE SET final_result = excluded.final_result, updated_at = CURRENT_TIMESTAMP
		`
	}

	if _, err := s.db.Exec(query, sessionID, resultID); err != nil {
		return fmt.Errorf("failed to upsert final result: %w", err)
	}
	return nil
}

// UpdateContact sets the contact fields on an existing session. Returns
// ErrNotFound when the session id is unknown; it never creates a row.
func (s *Store) UpdateContact(sessionID, name, email string) error {
	query := `UPDATE sessions SET name = $1, email = $2, updated_at = NOW() WHERE session_id = $3`
	if s.dialect == dialectSQLite {
		query = `UPDATE sessions SET name = $1, email = $2, updated_at = CURRENT_TIMESTAMP WHERE session_id = $3`
	}

	res, err := s.db.Exec(query, name, email, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// All returns every session, newest first.
func (s *Store) All() ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT session_id, results, final_result, name, email, created_at, updated_at
		FROM sessions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// FinalResultCounts groups completed sessions by final result. Returns
// the per-result counts and the total number of completed sessions.
func (s *Store) FinalResultCounts() (map[string]int, int, error) {
	rows, err := s.db.Query(`
		SELECT final_result, COUNT(*)
		FROM sessions
		WHERE final_result IS NOT NULL
		GROUP BY final_result
	`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query result counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var resultID string
		var count int
		if err := rows.Scan(&resultID, &count); err != nil {
			return nil, 0, fmt.Errorf("failed to scan result count: %w", err)
		}
		counts[resultID] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate result counts: %w", err)
	}

	return counts, total, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var sess Session
	var results []byte
	var finalResult, name, email sql.NullString

	err := row.Scan(&sess.ID, &results, &finalResult, &name, &email, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return nil, err
	}

	sess.Answers = make(map[string]string)
	if len(results) > 0 {
		if err := json.Unmarshal(results, &sess.Answers); err != nil {
			return nil, fmt.Errorf("corrupt results column for session %s: %w", sess.ID, err)
		}
	}

	if finalResult.Valid {
		sess.FinalResult = &finalResult.String
	}
	if name.Valid {
		sess.Name = &name.String
	}
	if email.Valid {
		sess.Email = &email.String
	}

	return &sess, nil
}
