// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package graph

import (
	"errors"
	"testing"
)

const validYAML = `
meta:
  title: Do You Need Kafka?
  tagline: Find out in two minutes.
start: start
questions:
  start:
    text: How many events per second do you produce?
    answers:
      low:
        text: Fewer than a hundred
        next: consumers
      high:
        text: Thousands or more
        next: need_it
  consumers:
    text: How many independent consumers read each event?
    answers:
      one:
        text: Just one
        next: skip_it
      many:
        text: Several teams
        next: need_it
results:
  need_it:
    title: You Need Kafka
    verdict: "Yes"
    description: Your volume and fan-out justify a log.
    recommendation: Start with a managed cluster.
  skip_it:
    title: You Don't Need Kafka
    verdict: "No"
    description: A queue or a cron job will do.
    recommendation: Revisit when volume grows.
`

func TestParseValid(t *testing.T) {
	g, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if g.Start != "start" {
		t.Errorf("Start = %q, want %q", g.Start, "start")
	}
	if len(g.Questions) != 2 {
		t.Errorf("len(Questions) = %d, want 2", len(g.Questions))
	}
	if len(g.Results) != 2 {
		t.Errorf("len(Results) = %d, want 2", len(g.Results))
	}
	if g.Meta.Title != "Do You Need Kafka?" {
		t.Errorf("Meta.Title = %q", g.Meta.Title)
	}
}

func TestParseAnswerOrder(t *testing.T) {
	g, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	q := g.Questions["start"]
	want := []string{"low", "high"}
	if len(q.Order) != len(want) {
		t.Fatalf("Order = %v, want %v", q.Order, want)
	}
	for i, key := range want {
		if q.Order[i] != key {
			t.Errorf("Order[%d] = %q, want %q", i, q.Order[i], key)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "empty file",
			yaml: "",
		},
		{
			name: "no questions",
			yaml: `
results:
  done:
    title: Done
`,
		},
		{
			name: "dangling next reference",
			yaml: `
questions:
  start:
    text: Q?
    answers:
      a:
        text: A
        next: nowhere
`,
		},
		{
			name: "question and result id collide",
			yaml: `
questions:
  start:
    text: Q?
    answers:
      a:
        text: A
        next: start
results:
  start:
    title: Clash
`,
		},
		{
			name: "missing start node",
			yaml: `
start: entry
questions:
  other:
    text: Q?
    answers:
      a:
        text: A
        next: other
`,
		},
		{
			name: "empty answer key",
			yaml: `
questions:
  start:
    text: Q?
    answers:
      "":
        text: A
        next: start
`,
		},
		{
			name: "answer without next",
			yaml: `
questions:
  start:
    text: Q?
    answers:
      a:
        text: A
`,
		},
		{
			name: "question without answers",
			yaml: `
questions:
  start:
    text: Q?
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded, want config error")
			}
			if !errors.Is(err, ErrConfig) {
				t.Errorf("Parse() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestDefaultStart(t *testing.T) {
	g, err := Parse([]byte(`
questions:
  start:
    text: Q?
    answers:
      a:
        text: A
        next: start
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Start != "start" {
		t.Errorf("Start = %q, want default %q", g.Start, "start")
	}
}

func TestResolve(t *testing.T) {
	g, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name   string
		nodeID string
		kind   NodeKind
	}{
		{"question node", "start", KindQuestion},
		{"result node", "need_it", KindResult},
		{"unknown node", "missing", KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := g.Resolve(tt.nodeID)
			if view.Kind != tt.kind {
				t.Errorf("Resolve(%q).Kind = %d, want %d", tt.nodeID, view.Kind, tt.kind)
			}
			if view.ID != tt.nodeID {
				t.Errorf("Resolve(%q).ID = %q", tt.nodeID, view.ID)
			}
			if tt.kind == KindQuestion && view.Question == nil {
				t.Error("Question view missing Question pointer")
			}
			if tt.kind == KindResult && view.Result == nil {
				t.Error("Result view missing Result pointer")
			}
		})
	}
}

func TestTitle(t *testing.T) {
	g, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := g.Title("need_it"); got != "You Need Kafka" {
		t.Errorf("Title(need_it) = %q", got)
	}
	if got := g.Title("ghost"); got != "ghost" {
		t.Errorf("Title(ghost) = %q, want id fallback", got)
	}
}
