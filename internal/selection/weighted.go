package selection

import (
	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/rng"
)

const (
	// IncorrectBias is the chance a front-loaded draw prefers a missed question.
	IncorrectBias = 0.5

	// UnseenBias is the additional chance a draw prefers an unseen question.
	UnseenBias = 0.3
)

// Shuffle returns a uniformly permuted copy of qs.
func Shuffle(qs []question.Question, src rng.Source) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pool is a shuffled group of questions consumed front to back.
type pool struct {
	items []question.Question
	next  int
}

func (p *pool) empty() bool { return p.next >= len(p.items) }

func (p *pool) take() question.Question {
	q := p.items[p.next]
	p.next++
	return q
}

func (p *pool) rest() []question.Question { return p.items[p.next:] }

// Weighted returns a permutation of qs biased toward unresolved material.
//
// Questions are split into incorrect, unseen (no record or never answered)
// and correct pools, each shuffled. For the first len(qs)/3 draws a uniform
// value r picks the incorrect pool when r < IncorrectBias and it still has
// items, else the unseen pool when r < IncorrectBias+UnseenBias and it
// still has items, else the correct pool if it still has items; otherwise
// the draw yields nothing. The remaining incorrect, unseen and correct
// items are then appended in that order, so every question appears exactly
// once.
func Weighted(qs []question.Question, s *performance.Store, src rng.Source) []question.Question {
	if len(qs) == 0 {
		return nil
	}

	var incorrect, unseen, correct []question.Question
	for _, q := range qs {
		switch s.Outcome(q.ID) {
		case performance.OutcomeIncorrect:
			incorrect = append(incorrect, q)
		case performance.OutcomeCorrect:
			correct = append(correct, q)
		default:
			unseen = append(unseen, q)
		}
	}

	inc := &pool{items: Shuffle(incorrect, src)}
	uns := &pool{items: Shuffle(unseen, src)}
	cor := &pool{items: Shuffle(correct, src)}

	out := make([]question.Question, 0, len(qs))
	for i := 0; i < len(qs)/3; i++ {
		r := src.Float64()
		switch {
		case r < IncorrectBias && !inc.empty():
			out = append(out, inc.take())
		case r < IncorrectBias+UnseenBias && !uns.empty():
			out = append(out, uns.take())
		case !cor.empty():
			out = append(out, cor.take())
		}
	}

	out = append(out, inc.rest()...)
	out = append(out, uns.rest()...)
	out = append(out, cor.rest()...)
	return out
}
