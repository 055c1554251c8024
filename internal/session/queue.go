package session

import "github.com/abhisek/certdrill/internal/question"

// Queue is the ordered, growable list of questions for a live session.
// The same question may appear more than once.
type Queue struct {
	items []question.Question
}

// NewQueue returns a queue holding a copy of qs.
func NewQueue(qs []question.Question) *Queue {
	items := make([]question.Question, len(qs))
	copy(items, qs)
	return &Queue{items: items}
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.items)
}

// At returns the entry at index i.
func (q *Queue) At(i int) (question.Question, bool) {
	if i < 0 || i >= len(q.items) {
		return question.Question{}, false
	}
	return q.items[i], true
}

// Items returns a copy of the queue contents.
func (q *Queue) Items() []question.Question {
	out := make([]question.Question, len(q.items))
	copy(out, q.items)
	return out
}

// Insert places qn at index, shifting later entries back. index is
// clamped to [0, Len()]. It returns the index actually used.
func (q *Queue) Insert(index int, qn question.Question) int {
	if index < 0 {
		index = 0
	}
	if index > len(q.items) {
		index = len(q.items)
	}
	q.items = append(q.items, question.Question{})
	copy(q.items[index+1:], q.items[index:])
	q.items[index] = qn
	return index
}

// Reinsert queues another occurrence of a just-missed question at
// min(offset, Len()). No deduplication is done.
func (q *Queue) Reinsert(qn question.Question, offset int) int {
	return q.Insert(offset, qn)
}
