// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers and server-rendered
pages for the quiz funnel.

# Handler Types

Each handler is a struct with store, graph, and config dependencies:

  - QuizHandler: landing page and question/result navigation
  - LeadHandler: contact capture after a verdict
  - AdminHandler: password-gated stats dashboard

Handlers are created via constructor functions:

	quizHandler := handlers.NewQuizHandler(st, g, cfg)

# Visitor Flow

	GET  /                 → Landing (mints session cookie, shows stats)
	GET  /q/{node_id}      → Node (renders a question or a verdict)
	POST /capture-lead     → CaptureLead (thank-you page)
	GET  /admin?pwd=...    → Dashboard

A question page links each answer to /q/{next}?ans={qid}:{key}; the
next request merges that answer into the session before rendering, so
the click itself is the submission - no JavaScript involved.

# Failure Posture

Read paths degrade (landing and admin render with empty stats when the
store is down); write paths are best-effort from the visitor's point of
view (failures are logged, the next page still renders). Only a missing
session cookie interrupts the flow, with a redirect back to the start.

# Templates

Pages are html/template files embedded at build time from templates/
and parsed once at init.
*/
package handlers
