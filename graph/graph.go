// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package graph

// NodeKind distinguishes the variants returned by Resolve.
type NodeKind int

const (
	KindNotFound NodeKind = iota
	KindQuestion
	KindResult
)

// Meta holds site-level metadata rendered on the landing page.
type Meta struct {
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`
}

// Answer is one selectable choice on a question. Next references the
// node shown after picking it - either another question or a result.
type Answer struct {
	Text string `yaml:"text"`
	Next string `yaml:"next"`
}

// Question is a single prompt with its answers. Order preserves the
// answer keys in document order so pages render choices the way the
// config file lists them.
type Question struct {
	Text    string
	Answers map[string]Answer
	Order   []string
}

// Result is a terminal node: the verdict shown at the end of a path.
type Result struct {
	Title          string `yaml:"title"`
	Verdict        string `yaml:"verdict"`
	Description    string `yaml:"description"`
	Recommendation string `yaml:"recommendation"`
}

// Graph is the full question graph. It is loaded once at startup and
// read-only afterwards, so it needs no synchronization.
type Graph struct {
	Meta      Meta
	Start     string
	Questions map[string]Question
	Results   map[string]Result
}

// NodeView is the tagged result of resolving a node id.
type NodeView struct {
	Kind     NodeKind
	ID       string
	Question *Question
	Result   *Result
}

// Resolve looks up a node id and reports whether it names a question,
// a result, or nothing. Traversal follows references only; there is no
// loop detection.
func (g *Graph) Resolve(nodeID string) NodeView {
	if q, ok := g.Questions[nodeID]; ok {
		return NodeView{Kind: KindQuestion, ID: nodeID, Question: &q}
	}
	if r, ok := g.Results[nodeID]; ok {
		return NodeView{Kind: KindResult, ID: nodeID, Result: &r}
	}
	return NodeView{Kind: KindNotFound, ID: nodeID}
}

// Title returns the human-readable title for a result id, or the id
// itself if the result is unknown.
func (g *Graph) Title(resultID string) string {
	if r, ok := g.Results[resultID]; ok {
		return r.Title
	}
	return resultID
}
