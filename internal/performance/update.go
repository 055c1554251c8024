package performance

import (
	"time"

	"github.com/abhisek/certdrill/internal/rng"
)

const (
	// MinReinsertGap is the smallest distance, in queue positions, between
	// a missed question and its re-insertion.
	MinReinsertGap = 4

	// MaxReinsertGap is the largest such distance (inclusive).
	MaxReinsertGap = 10
)

// Updater applies answer events to records. It holds only its clock and
// random source; records are passed in and returned by value.
type Updater struct {
	now func() time.Time
	rng rng.Source
}

// UpdaterOption configures an Updater.
type UpdaterOption func(*Updater)

// WithClock overrides the time source used for LastAnsweredAt.
func WithClock(now func() time.Time) UpdaterOption {
	return func(u *Updater) { u.now = now }
}

// NewUpdater creates an Updater drawing re-insertion gaps from src.
func NewUpdater(src rng.Source, opts ...UpdaterOption) *Updater {
	u := &Updater{now: time.Now, rng: src}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Update returns rec with one answer applied. position is the index of the
// answered question in the live session queue; a negative position is
// treated as 0. The input record is not modified.
func (u *Updater) Update(rec Record, correct bool, position int) Record {
	if position < 0 {
		position = 0
	}

	next := rec
	next.LastAnsweredAt = u.now()

	if correct {
		next.CorrectCount++
		next.LastOutcome = OutcomeCorrect
		next.ReinsertAt = nil
		return next
	}

	next.IncorrectCount++
	next.LastOutcome = OutcomeIncorrect
	at := position + rng.IntRange(u.rng, MinReinsertGap, MaxReinsertGap)
	next.ReinsertAt = &at
	return next
}
