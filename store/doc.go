// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists visitor sessions.

# Layout

One table, sessions, one row per visitor:

	session_id   TEXT PRIMARY KEY  -- opaque token minted by the front end
	results      JSONB/TEXT        -- question_id -> answer_key map
	final_result TEXT NULL         -- terminal result id once reached
	name, email  TEXT NULL         -- optional lead contact
	created_at, updated_at

# Drivers

Open selects the driver from the configured database type:

  - "postgres" via github.com/lib/pq (production)
  - "sqlite" via modernc.org/sqlite (development and tests)

The connection pool is bounded (20 open, 5 idle, 30m lifetime).

# Upsert Semantics

Every per-session mutation is a single INSERT ... ON CONFLICT statement
keyed on session_id, so two racing requests for the same session merge
instead of losing an update:

  - UpsertAnswer merges one {question: answer} pair into results;
    re-answering a question overwrites the previous value.
  - UpsertFinalResult sets the verdict, creating the row if needed.
  - UpdateContact is a plain UPDATE and returns ErrNotFound for an
    unknown session rather than creating one.

The JSON merge uses the || jsonb operator on Postgres and json_patch on
SQLite; both leave untouched keys intact.
*/
package store
