// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quiz Funnel server.

Quiz Funnel is a branching-question quiz: a visitor answers a sequence
of multiple-choice questions, each answer selects the next node, and
the path ends at a verdict page where contact details can be left.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	DATABASE_URL=postgres://... ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 5005 -d "postgres://..." -admin-pwd "..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): session store connection string
  - ADMIN_PASSWORD (--admin-pwd): shared secret for /admin

Optional settings:

  - PORT (-p): server port (default: 5005)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - QUESTIONS_PATH (-q): question graph file (default: questions.yaml)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - graph: question graph loading, validation, and node resolution
  - store: durable session records with atomic upsert-merge
  - engine: the session/answer state machine
  - stats: landing and admin aggregation
  - handlers: server-rendered HTTP pages
  - router: route definitions using Go 1.22+ routing
  - middleware: request logging and error helpers
  - auth: session tokens and the admin password check
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
