package performance

import (
	"testing"

	"github.com/abhisek/certdrill/internal/question"
)

func TestComputeStats(t *testing.T) {
	u := newTestUpdater(1)
	s := NewStore()

	a := u.Update(NewRecord("pmle-q-1"), false, 0)
	a = u.Update(a, true, 1)
	a = u.Update(a, true, 2)
	s.Put(a) // 2 correct, 1 incorrect, last correct
	s.Put(u.Update(NewRecord("pmle-q-2"), false, 0))
	s.Put(NewRecord("pmle-q-3"))

	// Records outside the current question set are ignored.
	s.Put(u.Update(NewRecord("pde-q-1"), true, 0))

	qs := []question.Question{{ID: "pmle-q-1"}, {ID: "pmle-q-2"}, {ID: "pmle-q-3"}, {ID: "pmle-q-4"}}
	got := ComputeStats(s, qs)

	if got.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", got.TotalQuestions)
	}
	if got.Answered != 2 {
		t.Errorf("Answered = %d, want 2", got.Answered)
	}
	if got.TotalCorrect != 2 || got.TotalIncorrect != 2 {
		t.Errorf("totals = (%d, %d), want (2, 2)", got.TotalCorrect, got.TotalIncorrect)
	}
	if got.PendingReview != 3 {
		t.Errorf("PendingReview = %d, want 3", got.PendingReview)
	}
	if got.Accuracy != 50 {
		t.Errorf("Accuracy = %f, want 50", got.Accuracy)
	}
}

func TestComputeStats_NoAnswers(t *testing.T) {
	got := ComputeStats(NewStore(), nil)
	if got.Accuracy != 0 || got.TotalQuestions != 0 {
		t.Errorf("ComputeStats(empty) = %+v, want zero", got)
	}
}
