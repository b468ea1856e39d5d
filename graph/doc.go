// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package graph loads and resolves the branching question graph.

# Definition File

The graph is declared in a YAML file:

	meta:
	  title: Do You Need Kafka?
	start: start
	questions:
	  start:
	    text: How many events per second do you produce?
	    answers:
	      low:
	        text: Fewer than a hundred
	        next: batch_ok
	results:
	  batch_ok:
	    title: You Don't Need Kafka
	    verdict: "No"

Load parses and validates the file once at startup:

	g, err := graph.Load("questions.yaml")

Validation failures (dangling next references, question/result id
collisions, empty ids or keys, missing start node) wrap ErrConfig and
are fatal: a process with a broken graph must not serve traffic.

# Resolution

Resolve returns a tagged NodeView:

	switch view := g.Resolve(nodeID); view.Kind {
	case graph.KindQuestion: // render the question
	case graph.KindResult:   // terminal verdict
	case graph.KindNotFound: // 404
	}

The graph is immutable after Load and safe for concurrent readers.
Answer ordering from the YAML document is preserved in Question.Order
so pages render choices in authoring order.
*/
package graph
