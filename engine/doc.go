// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine is the session/answer state machine.

A session moves through three states that are never stored explicitly -
they fall out of the record:

	NEW         no row exists
	IN_PROGRESS row exists, final_result is null
	COMPLETED   final_result is set

# Request Flow

A request for node X may carry an answer event for the previous
question (?ans=prevID:key). The event is processed before X is
resolved:

	if qid, key, ok := engine.ParseAnswerEvent(raw); ok {
		err := eng.SubmitAnswer(sessionID, qid, key)
	}
	view := eng.ResolveNode(sessionID, nodeID)

SubmitAnswer rejects events that do not match the graph with
ErrInvalidAnswer and guarantees the store is untouched in that case.
Valid events merge via a single atomic upsert, so a double-submitted or
retried answer cannot corrupt the record.

ResolveNode persists the final result when the node is terminal. That
write is best-effort: failures are logged and the visitor still sees
the verdict page.

CaptureLead attaches contact details to an existing session; it is a
plain field update, independent of completion state.

The engine itself is stateless per call and safe for any number of
concurrent request workers.
*/
package engine
