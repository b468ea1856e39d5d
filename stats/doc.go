// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats aggregates persisted sessions into the two reports the
site renders.

# Landing Stats

Landing converts grouped final-result counts into integer percentages
sorted descending, for the "X% of visitors got this verdict" block:

	counts, total, _ := st.FinalResultCounts()
	shares := stats.Landing(counts, total, g)

Integer division means percentages can sum to less than 100; they sum
to exactly 100 when the division is exact. Ties break on result id.

# Admin Report

Admin makes a single pass over all sessions and produces total session
and lead counts, the captured leads (newest first, matching store
order), a final-result tally, and a per-question answer distribution.

Two tally semantics exist in this system's lineage: counting stored
final results versus inferring completion from answers whose next node
is terminal. This package counts stored final results only - sessions
that answered everything but never loaded the verdict page are
deliberately not counted as completed.

Answer texts longer than 40 characters are truncated with "..." when
used as tally keys so the dashboard table stays readable.

Both functions are pure: they touch neither the store nor the clock.
*/
package stats
