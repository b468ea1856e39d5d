// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quiz-funnel/cliparse"
	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/handlers"
	"github.com/danielhkuo/quiz-funnel/middleware"
	"github.com/danielhkuo/quiz-funnel/store"
)

func NewRouter(st *store.Store, g *graph.Graph, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(st, g, cfg)
	leadHandler := handlers.NewLeadHandler(st, g, cfg)
	adminHandler := handlers.NewAdminHandler(st, g, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Visitor flow
	mux.HandleFunc("GET /{$}", middleware.WithLogging(quizHandler.Landing))
	mux.HandleFunc("GET /q/{node_id}", middleware.WithLogging(quizHandler.Node))
	mux.HandleFunc("POST /capture-lead", middleware.WithLogging(leadHandler.CaptureLead))

	// Owner dashboard
	mux.HandleFunc("GET /admin", middleware.WithLogging(adminHandler.Dashboard))

	return mux
}
