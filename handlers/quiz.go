// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-funnel/auth"
	"github.com/danielhkuo/quiz-funnel/cliparse"
	"github.com/danielhkuo/quiz-funnel/engine"
	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/middleware"
	"github.com/danielhkuo/quiz-funnel/stats"
	"github.com/danielhkuo/quiz-funnel/store"
)

// sessionCookie names the cookie carrying the opaque visitor token.
const sessionCookie = "session_id"

type QuizHandler struct {
	store  *store.Store
	graph  *graph.Graph
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewQuizHandler(st *store.Store, g *graph.Graph, cfg cliparse.Config) *QuizHandler {
	return &QuizHandler{
		store:  st,
		graph:  g,
		engine: engine.New(g, st),
		cfg:    cfg,
	}
}

type landingView struct {
	Meta    graph.Meta
	StartID string
	Stats   []stats.ResultShare
}

type answerView struct {
	Key  string
	Text string
	Next string
}

type questionView struct {
	Meta    graph.Meta
	ID      string
	Text    string
	Answers []answerView
}

type resultView struct {
	Meta     graph.Meta
	Result   *graph.Result
	Message  string
	HideForm bool
}

// Landing handles GET /
// Issues a fresh session cookie and renders the landing page with the
// final-result distribution. A store failure degrades to empty stats;
// the page always renders.
func (h *QuizHandler) Landing(w http.ResponseWriter, r *http.Request) {
	var shares []stats.ResultShare
	counts, total, err := h.store.FinalResultCounts()
	if err != nil {
		slog.Warn("failed to load landing stats", "error", err)
	} else {
		shares = stats.Landing(counts, total, h.graph)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    auth.NewSessionID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	renderPage(w, "index.html", landingView{
		Meta:    h.graph.Meta,
		StartID: h.graph.Start,
		Stats:   shares,
	})
}

// Node handles GET /q/{node_id}?ans={prevQuestionID}:{answerKey}
// An incoming answer event is merged before the node is resolved, so
// persistence always reflects the click that led here.
func (h *QuizHandler) Node(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	sessionID := cookie.Value

	if raw := r.URL.Query().Get("ans"); raw != "" {
		if questionID, answerKey, ok := engine.ParseAnswerEvent(raw); ok {
			err := h.engine.SubmitAnswer(sessionID, questionID, answerKey)
			switch {
			case errors.Is(err, engine.ErrInvalidAnswer):
				// Rejected event: nothing was merged, the page still renders.
				slog.Warn("ignoring invalid answer event", "session_id", sessionID, "ans", raw)
			case err != nil:
				// Best-effort persistence: the visitor keeps moving.
				slog.Error("failed to persist answer", "error", err, "session_id", sessionID)
			}
		}
	}

	nodeID := r.PathValue("node_id")
	view := h.engine.ResolveNode(sessionID, nodeID)

	switch view.Kind {
	case graph.KindQuestion:
		answers := make([]answerView, 0, len(view.Question.Order))
		for _, key := range view.Question.Order {
			a := view.Question.Answers[key]
			answers = append(answers, answerView{Key: key, Text: a.Text, Next: a.Next})
		}
		renderPage(w, "question.html", questionView{
			Meta:    h.graph.Meta,
			ID:      view.ID,
			Text:    view.Question.Text,
			Answers: answers,
		})

	case graph.KindResult:
		renderPage(w, "result.html", resultView{
			Meta:   h.graph.Meta,
			Result: view.Result,
		})

	default:
		middleware.HTTPError(w, http.StatusNotFound, "Node not found")
	}
}
