// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quiz-funnel/graph"
)

var (
	// ErrInvalidAnswer means the (question, answer) pair does not exist
	// in the graph. The event is rejected before anything is written.
	ErrInvalidAnswer = errors.New("invalid answer event")

	// ErrNodeNotFound means the requested node id names neither a
	// question nor a result.
	ErrNodeNotFound = errors.New("node not found")
)

// Store is the slice of the session store the engine needs. Mutations
// must be atomic per session id; the engine performs no read-modify-
// write of its own.
type Store interface {
	UpsertAnswer(sessionID, questionID, answerKey string) error
	UpsertFinalResult(sessionID, resultID string) error
	UpdateContact(sessionID, name, email string) error
}

// Engine drives a visitor's walk through the question graph. It holds
// no per-request state: every call works off the immutable graph and a
// single store statement, so concurrent use needs no locking here.
type Engine struct {
	graph *graph.Graph
	store Store
}

func New(g *graph.Graph, s Store) *Engine {
	return &Engine{graph: g, store: s}
}

// Graph exposes the loaded question graph for rendering.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// ParseAnswerEvent splits a raw "questionID:answerKey" event. ok is
// false for anything malformed; callers treat that as no event at all.
func ParseAnswerEvent(raw string) (questionID, answerKey string, ok bool) {
	questionID, answerKey, found := strings.Cut(raw, ":")
	if !found || questionID == "" || answerKey == "" {
		return "", "", false
	}
	return questionID, answerKey, true
}

// SubmitAnswer validates an answer event against the graph and merges
// it into the session record. Invalid events return ErrInvalidAnswer
// without touching the store. Re-answering a question overwrites the
// earlier choice.
func (e *Engine) SubmitAnswer(sessionID, questionID, answerKey string) error {
	q, ok := e.graph.Questions[questionID]
	if !ok {
		return ErrInvalidAnswer
	}
	if _, ok := q.Answers[answerKey]; !ok {
		return ErrInvalidAnswer
	}

	return e.store.UpsertAnswer(sessionID, questionID, answerKey)
}

// ResolveNode looks up the node a visitor is viewing. Reaching a result
// marks the session completed; persistence there is best-effort - a
// store failure is logged and the visitor still sees the verdict.
func (e *Engine) ResolveNode(sessionID, nodeID string) graph.NodeView {
	view := e.graph.Resolve(nodeID)

	if view.Kind == graph.KindResult {
		if err := e.store.UpsertFinalResult(sessionID, nodeID); err != nil {
			slog.Error("failed to persist final result", "error", err, "session_id", sessionID, "result_id", nodeID)
		}
	}

	return view
}

// CaptureLead records contact details against an existing session. It
// does not require the session to be completed. Unknown sessions
// surface store.ErrNotFound; callers may ignore it.
func (e *Engine) CaptureLead(sessionID, name, email string) error {
	return e.store.UpdateContact(sessionID, name, email)
}
