// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// newTestStore opens a sqlite-backed store in a temp directory so the
// suite needs no external database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open("sqlite", filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return s
}

func TestOpenUnknownType(t *testing.T) {
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Error("Open() with unknown type succeeded, want error")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.CreateSchema(); err != nil {
		t.Errorf("second CreateSchema() error = %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestUpsertAnswerCreatesRow(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertAnswer("s1", "q1", "a"); err != nil {
		t.Fatalf("UpsertAnswer() error = %v", err)
	}

	sess, err := s.Get("s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := sess.Answers["q1"]; got != "a" {
		t.Errorf("Answers[q1] = %q, want %q", got, "a")
	}
	if sess.FinalResult != nil {
		t.Errorf("FinalResult = %v, want nil", *sess.FinalResult)
	}
}

func TestUpsertAnswerMergesAndOverwrites(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertAnswer("s1", "q1", "a"); err != nil {
		t.Fatalf("UpsertAnswer(q1, a) error = %v", err)
	}
	if err := s.UpsertAnswer("s1", "q2", "b"); err != nil {
		t.Fatalf("UpsertAnswer(q2, b) error = %v", err)
	}
	// Re-answering q1 overwrites, not appends.
	if err := s.UpsertAnswer("s1", "q1", "c"); err != nil {
		t.Fatalf("UpsertAnswer(q1, c) error = %v", err)
	}

	sess, err := s.Get("s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Answers) != 2 {
		t.Errorf("len(Answers) = %d, want 2", len(sess.Answers))
	}
	if sess.Answers["q1"] != "c" {
		t.Errorf("Answers[q1] = %q, want %q (last write wins)", sess.Answers["q1"], "c")
	}
	if sess.Answers["q2"] != "b" {
		t.Errorf("Answers[q2] = %q, want %q (untouched key preserved)", sess.Answers["q2"], "b")
	}
}

func TestUpsertFinalResultMaterializesRow(t *testing.T) {
	s := newTestStore(t)

	// No prior answers: visitor jumped straight to a result URL.
	if err := s.UpsertFinalResult("s1", "result_x"); err != nil {
		t.Fatalf("UpsertFinalResult() error = %v", err)
	}

	sess, err := s.Get("s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sess.FinalResult == nil || *sess.FinalResult != "result_x" {
		t.Errorf("FinalResult = %v, want result_x", sess.FinalResult)
	}
	if len(sess.Answers) != 0 {
		t.Errorf("Answers = %v, want empty map", sess.Answers)
	}
}

func TestUpsertFinalResultPreservesAnswers(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertAnswer("s1", "q1", "b"); err != nil {
		t.Fatalf("UpsertAnswer() error = %v", err)
	}
	if err := s.UpsertFinalResult("s1", "result_x"); err != nil {
		t.Fatalf("UpsertFinalResult() error = %v", err)
	}

	sess, err := s.Get("s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sess.Answers["q1"] != "b" {
		t.Errorf("Answers[q1] = %q, want preserved %q", sess.Answers["q1"], "b")
	}
	if sess.FinalResult == nil || *sess.FinalResult != "result_x" {
		t.Errorf("FinalResult = %v, want result_x", sess.FinalResult)
	}
}

func TestUpdateContact(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertAnswer("s1", "q1", "b"); err != nil {
		t.Fatalf("UpsertAnswer() error = %v", err)
	}
	if err := s.UpsertFinalResult("s1", "result_x"); err != nil {
		t.Fatalf("UpsertFinalResult() error = %v", err)
	}

	if err := s.UpdateContact("s1", "Ana", "a@x.com"); err != nil {
		t.Fatalf("UpdateContact() error = %v", err)
	}

	sess, err := s.Get("s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sess.Name == nil || *sess.Name != "Ana" {
		t.Errorf("Name = %v, want Ana", sess.Name)
	}
	if sess.Email == nil || *sess.Email != "a@x.com" {
		t.Errorf("Email = %v, want a@x.com", sess.Email)
	}
	// Contact capture must not disturb the rest of the record.
	if sess.Answers["q1"] != "b" {
		t.Errorf("Answers[q1] = %q, want %q", sess.Answers["q1"], "b")
	}
	if sess.FinalResult == nil || *sess.FinalResult != "result_x" {
		t.Errorf("FinalResult = %v, want result_x", sess.FinalResult)
	}
}

func TestUpdateContactUnknownSession(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateContact("ghost", "Ana", "a@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateContact() error = %v, want ErrNotFound", err)
	}

	// Must not have created a row.
	if _, err := s.Get("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestFinalResultCounts(t *testing.T) {
	s := newTestStore(t)

	for i, resultID := range []string{"result_x", "result_x", "result_y"} {
		id := string(rune('a' + i))
		if err := s.UpsertFinalResult("sess-"+id, resultID); err != nil {
			t.Fatalf("UpsertFinalResult() error = %v", err)
		}
	}
	// An in-progress session must not count.
	if err := s.UpsertAnswer("sess-open", "q1", "a"); err != nil {
		t.Fatalf("UpsertAnswer() error = %v", err)
	}

	counts, total, err := s.FinalResultCounts()
	if err != nil {
		t.Fatalf("FinalResultCounts() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if counts["result_x"] != 2 {
		t.Errorf("counts[result_x] = %d, want 2", counts["result_x"])
	}
	if counts["result_y"] != 1 {
		t.Errorf("counts[result_y] = %d, want 1", counts["result_y"])
	}
}

func TestFinalResultCountsEmpty(t *testing.T) {
	s := newTestStore(t)

	counts, total, err := s.FinalResultCounts()
	if err != nil {
		t.Fatalf("FinalResultCounts() error = %v", err)
	}
	if total != 0 || len(counts) != 0 {
		t.Errorf("counts = %v, total = %d, want empty", counts, total)
	}
}

func TestAllOrderedNewestFirst(t *testing.T) {
	s := newTestStore(t)

	// Seed with explicit timestamps; CURRENT_TIMESTAMP has only
	// second resolution so back-to-back upserts could tie.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		_, err := s.db.Exec(`
			INSERT INTO sessions (session_id, results, created_at, updated_at)
			VALUES ($1, '{}', $2, $2)
		`, id, base.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("Failed to seed session %s: %v", id, err)
		}
	}

	sessions, err := s.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(sessions))
	}

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if sessions[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, sessions[i].ID, id)
		}
	}
}
