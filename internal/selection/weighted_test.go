package selection

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/rng"
)

// scriptedSource replays fixed Float64 values. IntN always returns n-1,
// which makes Shuffle the identity permutation.
type scriptedSource struct {
	floats []float64
}

func (s *scriptedSource) IntN(n int) int { return n - 1 }

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func mixedBank(n int) ([]question.Question, *performance.Store) {
	s := performance.NewStore()
	qs := make([]question.Question, n)
	for i := range qs {
		id := fmt.Sprintf("pmle-q-%d", i+1)
		qs[i] = q(id)
		switch i % 4 {
		case 0:
			s.Put(answered(id, performance.OutcomeIncorrect))
		case 1:
			s.Put(answered(id, performance.OutcomeCorrect))
		case 2:
			s.Put(performance.NewRecord(id))
		}
		// i%4 == 3: no record at all.
	}
	return qs, s
}

func sortedIDs(qs []question.Question) []string {
	ids := question.IDs(qs)
	sort.Strings(ids)
	return ids
}

func TestWeighted_IsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 30, 101} {
		for seed := uint64(1); seed <= 20; seed++ {
			qs, s := mixedBank(n)
			got := Weighted(qs, s, rng.New(seed))
			require.Len(t, got, n, "n=%d seed=%d", n, seed)
			assert.Equal(t, sortedIDs(qs), sortedIDs(got), "n=%d seed=%d", n, seed)
		}
	}
}

func TestWeighted_SinglePoolPermutation(t *testing.T) {
	outcomes := []performance.Outcome{
		performance.OutcomeNever,
		performance.OutcomeCorrect,
		performance.OutcomeIncorrect,
	}
	for _, o := range outcomes {
		s := performance.NewStore()
		var qs []question.Question
		for i := 0; i < 9; i++ {
			id := fmt.Sprintf("q%d", i)
			qs = append(qs, q(id))
			if o != performance.OutcomeNever {
				s.Put(answered(id, o))
			}
		}
		got := Weighted(qs, s, rng.New(3))
		assert.Equal(t, sortedIDs(qs), sortedIDs(got), "outcome %v", o)
	}
}

func TestWeighted_Empty(t *testing.T) {
	assert.Empty(t, Weighted(nil, performance.NewStore(), rng.New(1)))
}

func TestWeighted_ScriptedDraws(t *testing.T) {
	s := performance.NewStore()
	s.Put(answered("I1", performance.OutcomeIncorrect))
	s.Put(answered("I2", performance.OutcomeIncorrect))
	s.Put(performance.NewRecord("U1"))
	s.Put(answered("C1", performance.OutcomeCorrect))
	s.Put(answered("C2", performance.OutcomeCorrect))
	qs := []question.Question{q("C1"), q("U1"), q("I1"), q("C2"), q("I2"), q("U2")}

	// Two front-loaded draws: 0.6 picks unseen, 0.1 picks incorrect.
	src := &scriptedSource{floats: []float64{0.6, 0.1}}
	got := question.IDs(Weighted(qs, s, src))

	assert.Equal(t, []string{"U1", "I1", "I2", "U2", "C1", "C2"}, got)
}

func TestWeighted_FallsThroughToNextPool(t *testing.T) {
	s := performance.NewStore()
	s.Put(answered("C1", performance.OutcomeCorrect))
	qs := []question.Question{q("C1"), q("U1"), q("U2")}

	// No incorrect questions: a draw below IncorrectBias takes an unseen one.
	src := &scriptedSource{floats: []float64{0.1}}
	got := question.IDs(Weighted(qs, s, src))

	assert.Equal(t, []string{"U1", "U2", "C1"}, got)
}

func TestWeighted_SkippedDrawKeepsCompleteness(t *testing.T) {
	s := performance.NewStore()
	for _, id := range []string{"I1", "I2", "I3"} {
		s.Put(answered(id, performance.OutcomeIncorrect))
	}
	qs := []question.Question{q("I1"), q("I2"), q("I3")}

	// 0.9 selects the correct pool, which is empty: the draw yields nothing.
	src := &scriptedSource{floats: []float64{0.9}}
	got := question.IDs(Weighted(qs, s, src))

	assert.Equal(t, []string{"I1", "I2", "I3"}, got)
}

func TestWeighted_FrontLoadsUnresolved(t *testing.T) {
	// 20 incorrect, 20 unseen and 20 correct: across many seeds the first
	// third should favor incorrect questions and hold few correct ones.
	s := performance.NewStore()
	var qs []question.Question
	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("q%d", i)
		qs = append(qs, q(id))
		switch i % 3 {
		case 0:
			s.Put(answered(id, performance.OutcomeIncorrect))
		case 1:
			s.Put(answered(id, performance.OutcomeCorrect))
		}
	}

	front, incorrectFront, correctFront := 0, 0, 0
	for seed := uint64(1); seed <= 50; seed++ {
		got := Weighted(qs, s, rng.New(seed))
		for _, x := range got[:20] {
			front++
			switch s.Outcome(x.ID) {
			case performance.OutcomeIncorrect:
				incorrectFront++
			case performance.OutcomeCorrect:
				correctFront++
			}
		}
	}
	incShare := float64(incorrectFront) / float64(front)
	corShare := float64(correctFront) / float64(front)
	assert.Greater(t, incShare, 0.4, "incorrect share of the first third = %.2f", incShare)
	assert.Less(t, corShare, 0.3, "correct share of the first third = %.2f", corShare)
}

func TestWeighted_DoesNotMutateInput(t *testing.T) {
	qs, s := mixedBank(12)
	before := question.IDs(qs)
	_ = Weighted(qs, s, rng.New(9))
	assert.Equal(t, before, question.IDs(qs))
}

func TestShuffle_Uniformity(t *testing.T) {
	qs := []question.Question{q("a"), q("b"), q("c")}
	counts := make(map[string]int)
	src := rng.New(2024)
	const trials = 6000
	for i := 0; i < trials; i++ {
		ids := question.IDs(Shuffle(qs, src))
		counts[fmt.Sprint(ids)]++
	}
	require.Len(t, counts, 6, "every permutation should occur")
	for perm, c := range counts {
		// Expected 1000 each; allow a generous band.
		assert.InDelta(t, trials/6, c, 200, "permutation %s", perm)
	}
}
