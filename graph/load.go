// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package graph

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfig wraps every validation failure so callers can treat any
// malformed graph definition as a fatal startup error.
var ErrConfig = errors.New("invalid question graph")

// fileSchema mirrors the on-disk YAML layout.
type fileSchema struct {
	Meta      Meta                `yaml:"meta"`
	Start     string              `yaml:"start"`
	Questions map[string]Question `yaml:"questions"`
	Results   map[string]Result   `yaml:"results"`
}

// UnmarshalYAML decodes a question while recording the document order
// of its answer keys, which a plain map decode would lose.
func (q *Question) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Text    string    `yaml:"text"`
		Answers yaml.Node `yaml:"answers"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	q.Text = raw.Text
	q.Answers = make(map[string]Answer)
	q.Order = nil

	if raw.Answers.Kind == 0 {
		return nil
	}
	if raw.Answers.Kind != yaml.MappingNode {
		return fmt.Errorf("answers must be a mapping")
	}

	for i := 0; i+1 < len(raw.Answers.Content); i += 2 {
		keyNode := raw.Answers.Content[i]
		valNode := raw.Answers.Content[i+1]

		var a Answer
		if err := valNode.Decode(&a); err != nil {
			return err
		}

		key := keyNode.Value
		if _, dup := q.Answers[key]; dup {
			return fmt.Errorf("duplicate answer key %q", key)
		}
		q.Answers[key] = a
		q.Order = append(q.Order, key)
	}

	return nil
}

// Load reads and validates a question graph definition from a YAML file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question graph: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a question graph definition.
func Parse(data []byte) (*Graph, error) {
	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	g := &Graph{
		Meta:      raw.Meta,
		Start:     raw.Start,
		Questions: raw.Questions,
		Results:   raw.Results,
	}
	if g.Questions == nil {
		g.Questions = make(map[string]Question)
	}
	if g.Results == nil {
		g.Results = make(map[string]Result)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Graph) validate() error {
	if len(g.Questions) == 0 {
		return fmt.Errorf("%w: no questions defined", ErrConfig)
	}

	// Entry node defaults to "start" when the file omits it.
	if g.Start == "" {
		g.Start = "start"
	}
	if _, ok := g.Questions[g.Start]; !ok {
		return fmt.Errorf("%w: start node %q is not a question", ErrConfig, g.Start)
	}

	for id, q := range g.Questions {
		if id == "" {
			return fmt.Errorf("%w: empty question id", ErrConfig)
		}
		if _, collides := g.Results[id]; collides {
			return fmt.Errorf("%w: id %q is both a question and a result", ErrConfig, id)
		}
		if len(q.Answers) == 0 {
			return fmt.Errorf("%w: question %q has no answers", ErrConfig, id)
		}
		for key, a := range q.Answers {
			if key == "" {
				return fmt.Errorf("%w: question %q has an empty answer key", ErrConfig, id)
			}
			if a.Next == "" {
				return fmt.Errorf("%w: answer %q of question %q has no next node", ErrConfig, key, id)
			}
			_, isQuestion := g.Questions[a.Next]
			_, isResult := g.Results[a.Next]
			if !isQuestion && !isResult {
				return fmt.Errorf("%w: answer %q of question %q references unknown node %q", ErrConfig, key, id, a.Next)
			}
		}
	}

	for id := range g.Results {
		if id == "" {
			return fmt.Errorf("%w: empty result id", ErrConfig)
		}
	}

	return nil
}
