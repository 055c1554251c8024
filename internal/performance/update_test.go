package performance

import (
	"testing"
	"time"

	"github.com/abhisek/certdrill/internal/rng"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestUpdater(seed uint64) *Updater {
	return NewUpdater(rng.New(seed), WithClock(fixedClock))
}

func TestUpdate_Incorrect(t *testing.T) {
	u := newTestUpdater(1)
	in := NewRecord("pmle-q-1")

	got := u.Update(in, false, 5)

	if got.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", got.IncorrectCount)
	}
	if got.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0", got.CorrectCount)
	}
	if got.LastOutcome != OutcomeIncorrect {
		t.Errorf("LastOutcome = %v, want incorrect", got.LastOutcome)
	}
	if !got.LastAnsweredAt.Equal(fixedNow) {
		t.Errorf("LastAnsweredAt = %v, want %v", got.LastAnsweredAt, fixedNow)
	}
	if got.ReinsertAt == nil {
		t.Fatal("expected ReinsertAt to be set")
	}
	if *got.ReinsertAt < 9 || *got.ReinsertAt > 15 {
		t.Errorf("ReinsertAt = %d, want in [9, 15]", *got.ReinsertAt)
	}
}

func TestUpdate_IncorrectOffsetRange(t *testing.T) {
	u := newTestUpdater(99)
	for pos := 0; pos < 50; pos++ {
		for i := 0; i < 20; i++ {
			got := u.Update(NewRecord("q"), false, pos)
			at := *got.ReinsertAt
			if at < pos+MinReinsertGap || at > pos+MaxReinsertGap {
				t.Fatalf("position %d: ReinsertAt = %d, want in [%d, %d]",
					pos, at, pos+MinReinsertGap, pos+MaxReinsertGap)
			}
		}
	}
}

func TestUpdate_Correct(t *testing.T) {
	u := newTestUpdater(1)
	missed := u.Update(NewRecord("q"), false, 2)

	got := u.Update(missed, true, 7)

	if got.CorrectCount != 1 || got.IncorrectCount != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", got.CorrectCount, got.IncorrectCount)
	}
	if got.LastOutcome != OutcomeCorrect {
		t.Errorf("LastOutcome = %v, want correct", got.LastOutcome)
	}
	if got.ReinsertAt != nil {
		t.Errorf("ReinsertAt = %d, want nil", *got.ReinsertAt)
	}
}

func TestUpdate_RepeatedCorrectClearsOffset(t *testing.T) {
	u := newTestUpdater(3)
	r := u.Update(NewRecord("q"), true, 0)
	r = u.Update(r, true, 4)
	if r.ReinsertAt != nil {
		t.Errorf("ReinsertAt = %d, want nil", *r.ReinsertAt)
	}
	if r.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", r.CorrectCount)
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	u := newTestUpdater(5)
	in := u.Update(NewRecord("q"), false, 1)
	before := *in.ReinsertAt
	snapshot := in

	_ = u.Update(in, false, 20)
	_ = u.Update(in, true, 20)

	if in.IncorrectCount != snapshot.IncorrectCount || in.CorrectCount != snapshot.CorrectCount {
		t.Error("input counts changed")
	}
	if *in.ReinsertAt != before {
		t.Errorf("input ReinsertAt changed: %d -> %d", before, *in.ReinsertAt)
	}
}

func TestUpdate_NegativePosition(t *testing.T) {
	u := newTestUpdater(8)
	got := u.Update(NewRecord("q"), false, -3)
	if *got.ReinsertAt < MinReinsertGap || *got.ReinsertAt > MaxReinsertGap {
		t.Errorf("ReinsertAt = %d, want in [%d, %d]", *got.ReinsertAt, MinReinsertGap, MaxReinsertGap)
	}
}

func TestUpdate_Deterministic(t *testing.T) {
	a := newTestUpdater(11).Update(NewRecord("q"), false, 3)
	b := newTestUpdater(11).Update(NewRecord("q"), false, 3)
	if *a.ReinsertAt != *b.ReinsertAt {
		t.Errorf("same seed gave %d and %d", *a.ReinsertAt, *b.ReinsertAt)
	}
}
