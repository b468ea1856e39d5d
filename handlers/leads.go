// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-funnel/cliparse"
	"github.com/danielhkuo/quiz-funnel/engine"
	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/store"
)

type LeadHandler struct {
	graph  *graph.Graph
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewLeadHandler(st *store.Store, g *graph.Graph, cfg cliparse.Config) *LeadHandler {
	return &LeadHandler{
		graph:  g,
		engine: engine.New(g, st),
		cfg:    cfg,
	}
}

// CaptureLead handles POST /capture-lead
// Attaches name/email to the visitor's session. An unknown session or
// a store failure is logged but the visitor still gets the thank-you
// page; their contact form must never dead-end on our plumbing.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	sessionID := cookie.Value

	name := r.FormValue("name")
	email := r.FormValue("email")

	if email != "" {
		err := h.engine.CaptureLead(sessionID, name, email)
		switch {
		case errors.Is(err, store.ErrNotFound):
			slog.Warn("lead capture for unknown session", "session_id", sessionID)
		case err != nil:
			slog.Error("failed to capture lead", "error", err, "session_id", sessionID)
		default:
			slog.Info("lead captured", "session_id", sessionID)
		}
	}

	renderPage(w, "result.html", resultView{
		Meta: h.graph.Meta,
		Result: &graph.Result{
			Title:   "Thank You",
			Verdict: "Saved",
		},
		Message:  "Thanks! I'll be in touch.",
		HideForm: true,
	})
}
