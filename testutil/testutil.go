// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quiz-funnel/cliparse"
	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/store"
)

// GraphYAML is the fixture definition shared by handler and router
// tests: two questions, two results.
const GraphYAML = `
meta:
  title: Do You Need Kafka?
  tagline: Find out in two minutes.
start: q1
questions:
  q1:
    text: First question?
    answers:
      a:
        text: Keep going
        next: q2
      b:
        text: Stop here
        next: result_x
  q2:
    text: Second question?
    answers:
      a:
        text: Done
        next: result_y
results:
  result_x:
    title: Cautious
    verdict: Maybe
    description: You might not need it.
    recommendation: Start smaller.
  result_y:
    title: Bold
    verdict: Go
`

// SetupTestStore opens a temp-file sqlite store with the schema
// applied, so tests need no external database.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open("sqlite", filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return s
}

// TestGraph parses the shared fixture graph.
func TestGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g, err := graph.Parse([]byte(GraphYAML))
	if err != nil {
		t.Fatalf("Failed to parse test graph: %v", err)
	}
	return g
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5005,
		DatabaseURL:   "file:test.db",
		DatabaseType:  "sqlite",
		AdminPassword: "test-admin-pwd",
		QuestionsPath: "questions.yaml",
	}
}

// SeedSession inserts a full session row directly, bypassing the
// upsert path, for tests that need controlled timestamps.
func SeedSession(t *testing.T, s *store.Store, id, resultsJSON string, finalResult, name, email *string, createdAt time.Time) {
	t.Helper()

	_, err := s.DB().Exec(`
		INSERT INTO sessions (session_id, results, final_result, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, id, resultsJSON, finalResult, name, email, createdAt)
	if err != nil {
		t.Fatalf("Failed to seed session %s: %v", id, err)
	}
}

// MakeRequest creates an HTTP test request with an optional session
// cookie and form body.
func MakeRequest(method, path, sessionID string, form map[string]string) *http.Request {
	var req *http.Request
	if form != nil {
		values := url.Values{}
		for k, v := range form {
			values.Set(k, v)
		}
		req = httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// StrPtr is a convenience for nullable seed fields.
func StrPtr(s string) *string { return &s }
