package performance

import "github.com/abhisek/certdrill/internal/question"

// Stats summarizes progress on the questions of the current bank.
type Stats struct {
	TotalQuestions int
	Answered       int // questions answered at least once
	TotalCorrect   int // correct answers across all questions
	TotalIncorrect int
	PendingReview  int     // questions whose last outcome is not correct
	Accuracy       float64 // percent of answers that were correct
}

// ComputeStats aggregates s over qs only; records for identifiers outside
// qs are ignored.
func ComputeStats(s *Store, qs []question.Question) Stats {
	st := Stats{TotalQuestions: len(qs)}
	for _, q := range qs {
		if s.NeedsReview(q.ID) {
			st.PendingReview++
		}
		r, ok := s.Get(q.ID)
		if !ok {
			continue
		}
		if r.Answered() {
			st.Answered++
		}
		st.TotalCorrect += r.CorrectCount
		st.TotalIncorrect += r.IncorrectCount
	}
	if total := st.TotalCorrect + st.TotalIncorrect; total > 0 {
		st.Accuracy = float64(st.TotalCorrect) / float64(total) * 100
	}
	return st
}
