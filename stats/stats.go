// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"sort"

	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/store"
)

// answerTruncateLen bounds answer text used as a tally key; longer
// answers are cut and marked with an ellipsis.
const answerTruncateLen = 40

// ResultShare is one landing-page "social proof" line.
type ResultShare struct {
	ResultID string
	Title    string
	Percent  int
}

// Lead is one captured contact row on the admin dashboard.
type Lead struct {
	Date  string
	Name  string
	Email string
}

// Report is the admin dashboard payload, computed in a single pass
// over all session records.
type Report struct {
	TotalSessions int
	LeadsCount    int
	ResultsTally  map[string]int
	AnswersTally  map[string]map[string]int
	Leads         []Lead
}

// Landing turns per-result completion counts into descending integer
// percentages. Result ids the graph no longer knows are skipped. Ties
// break on result id ascending so the order is stable across requests.
// A zero total yields an empty slice.
func Landing(counts map[string]int, total int, g *graph.Graph) []ResultShare {
	if total <= 0 {
		return nil
	}

	shares := make([]ResultShare, 0, len(counts))
	for resultID, count := range counts {
		r, ok := g.Results[resultID]
		if !ok {
			continue
		}
		shares = append(shares, ResultShare{
			ResultID: resultID,
			Title:    r.Title,
			Percent:  count * 100 / total,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].ResultID < shares[j].ResultID
	})

	return shares
}

// Admin aggregates every session record into the dashboard report.
// Results are tallied by the stored final_result of each session, not
// inferred from answers: a visitor who answered but never viewed a
// verdict page is not counted as completed.
func Admin(sessions []store.Session, g *graph.Graph) Report {
	report := Report{
		TotalSessions: len(sessions),
		ResultsTally:  make(map[string]int),
		AnswersTally:  make(map[string]map[string]int),
	}

	for _, sess := range sessions {
		if sess.Email != nil && *sess.Email != "" {
			report.LeadsCount++

			name := "Anonymous"
			if sess.Name != nil && *sess.Name != "" {
				name = *sess.Name
			}
			report.Leads = append(report.Leads, Lead{
				Date:  sess.CreatedAt.Format("2006-01-02 15:04"),
				Name:  name,
				Email: *sess.Email,
			})
		}

		if sess.FinalResult != nil {
			if r, ok := g.Results[*sess.FinalResult]; ok {
				report.ResultsTally[r.Title]++
			}
		}

		for questionID, answerKey := range sess.Answers {
			q, ok := g.Questions[questionID]
			if !ok {
				continue
			}
			a, ok := q.Answers[answerKey]
			if !ok {
				continue
			}

			if report.AnswersTally[q.Text] == nil {
				report.AnswersTally[q.Text] = make(map[string]int)
			}
			report.AnswersTally[q.Text][truncateAnswer(a.Text)]++
		}
	}

	return report
}

func truncateAnswer(s string) string {
	if len(s) <= answerTruncateLen {
		return s
	}
	return s[:answerTruncateLen] + "..."
}
