// Package selection decides which questions enter a session and in what
// order.
package selection

import (
	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/question"
)

// ForReview returns, in input order, every question that has no record,
// has never been answered, or was last answered incorrectly. An empty
// result means nothing needs review.
func ForReview(qs []question.Question, s *performance.Store) []question.Question {
	var out []question.Question
	for _, q := range qs {
		if s.NeedsReview(q.ID) {
			out = append(out, q)
		}
	}
	return out
}
