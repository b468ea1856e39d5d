// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-funnel/auth"
	"github.com/danielhkuo/quiz-funnel/cliparse"
	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/middleware"
	"github.com/danielhkuo/quiz-funnel/stats"
	"github.com/danielhkuo/quiz-funnel/store"
)

type AdminHandler struct {
	store *store.Store
	graph *graph.Graph
	cfg   cliparse.Config
}

func NewAdminHandler(st *store.Store, g *graph.Graph, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, graph: g, cfg: cfg}
}

type adminView struct {
	Meta   graph.Meta
	Report stats.Report
}

// Dashboard handles GET /admin?pwd={secret}
// Shared-secret check, then the full stats report. A store failure
// renders an empty report rather than failing the page.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if err := auth.CheckAdminPassword(r.URL.Query().Get("pwd"), h.cfg.AdminPassword); err != nil {
		middleware.HTTPError(w, http.StatusForbidden, "Forbidden")
		return
	}

	sessions, err := h.store.All()
	if err != nil {
		slog.Error("failed to load sessions for admin stats", "error", err)
		sessions = nil
	}

	renderPage(w, "admin.html", adminView{
		Meta:   h.graph.Meta,
		Report: stats.Admin(sessions, h.graph),
	})
}
