package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/rng"
	"github.com/abhisek/certdrill/internal/selection"
)

var (
	ErrNothingToReview = errors.New("no questions need review")
	ErrNoQuestions     = errors.New("question bank is empty")
	ErrSessionDone     = errors.New("session has no current question")
	ErrReadOnlyMode    = errors.New("mode does not accept answers")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrUnknownMode     = errors.New("unknown study mode")
)

// Saver persists a bank's performance store.
type Saver interface {
	Save(ctx context.Context, bank string, s *performance.Store) error
}

// Options are the collaborators of a Session.
type Options struct {
	// Bank is the key of the bank being studied.
	Bank string

	// Store is the bank's performance store. The session updates it in place.
	Store *performance.Store

	// Updater applies answers to records.
	Updater *performance.Updater

	// Rand orders weighted sessions.
	Rand rng.Source

	// Saver, if set, is called after every answer. Failures are logged and
	// otherwise ignored.
	Saver Saver

	Logger *zap.Logger
}

// Result describes the effect of one answer.
type Result struct {
	Correct       bool
	Record        performance.Record
	CorrectOption string
	Explanation   string

	// ReinsertedAt is the queue index of the re-queued copy, or -1.
	ReinsertedAt int
}

// Summary is the end-of-session report.
type Summary struct {
	Mode        Mode
	Answered    int
	Correct     int
	Missed      int // distinct questions answered incorrectly at least once
	QueueLength int
	Elapsed     time.Duration
}

// Accuracy returns the percentage of answers that were correct.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered) * 100
}

// Session is one pass through a queue of questions. It is driven by a
// single host loop and is not safe for concurrent use.
type Session struct {
	ID        string
	Mode      Mode
	Bank      string
	StartTime time.Time

	queue    *Queue
	index    int
	answered map[int]bool

	store   *performance.Store
	updater *performance.Updater
	saver   Saver
	log     *zap.Logger

	totalAnswered int
	totalCorrect  int
	missed        map[string]bool
}

// Start builds the session queue for mode from the bank's questions.
// Review mode returns ErrNothingToReview when every question was last
// answered correctly.
func Start(mode Mode, qs []question.Question, opts Options) (*Session, error) {
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	if opts.Store == nil {
		opts.Store = performance.NewStore()
	}
	if opts.Rand == nil {
		opts.Rand = rng.NewRandom()
	}
	if opts.Updater == nil {
		opts.Updater = performance.NewUpdater(opts.Rand)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var ordered []question.Question
	switch mode {
	case ModeReview:
		ordered = selection.ForReview(qs, opts.Store)
		if len(ordered) == 0 {
			return nil, ErrNothingToReview
		}
	case ModeMemorise:
		ordered = qs
	case ModeFlashcard, ModeQuiz, ModeFillInBlank:
		ordered = selection.Weighted(qs, opts.Store, opts.Rand)
	default:
		return nil, ErrUnknownMode
	}

	s := &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Bank:      opts.Bank,
		StartTime: time.Now(),
		queue:     NewQueue(ordered),
		answered:  make(map[int]bool),
		store:     opts.Store,
		updater:   opts.Updater,
		saver:     opts.Saver,
		log:       opts.Logger,
		missed:    make(map[string]bool),
	}
	s.log.Debug("session started",
		zap.String("session_id", s.ID),
		zap.String("bank", s.Bank),
		zap.String("mode", string(mode)),
		zap.Int("questions", s.queue.Len()),
	)
	return s, nil
}

// Current returns the question at the current position.
func (s *Session) Current() (question.Question, bool) {
	return s.queue.At(s.index)
}

// Index returns the current queue position.
func (s *Session) Index() int {
	return s.index
}

// Len returns the current queue length, including re-inserted copies.
func (s *Session) Len() int {
	return s.queue.Len()
}

// Queue returns a copy of the queue contents.
func (s *Session) Queue() []question.Question {
	return s.queue.Items()
}

// Answered reports whether the current position has been answered.
func (s *Session) Answered() bool {
	return s.answered[s.index]
}

// Answer grades choice against the current question, records the outcome
// in the store and, on a miss, queues the question again later in this
// session.
func (s *Session) Answer(ctx context.Context, choice string) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return Result{}, ErrSessionDone
	}
	return s.record(ctx, q, q.Check(choice))
}

// Grade records a self-assessed outcome for the current question, as in
// flashcard mode where the learner reveals the answer and judges themselves.
func (s *Session) Grade(ctx context.Context, correct bool) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return Result{}, ErrSessionDone
	}
	return s.record(ctx, q, correct)
}

func (s *Session) record(ctx context.Context, q question.Question, correct bool) (Result, error) {
	if s.Mode.ReadOnly() {
		return Result{}, ErrReadOnlyMode
	}
	if s.answered[s.index] {
		return Result{}, ErrAlreadyAnswered
	}

	rec := s.updater.Update(s.store.Lookup(q.ID), correct, s.index)
	s.store.Put(rec)
	s.answered[s.index] = true
	s.totalAnswered++

	res := Result{
		Correct:       correct,
		Record:        rec,
		CorrectOption: q.CorrectOption(),
		Explanation:   q.Explanation,
		ReinsertedAt:  -1,
	}
	if correct {
		s.totalCorrect++
	} else {
		s.missed[q.ID] = true
		if rec.ReinsertAt != nil {
			at := s.queue.Reinsert(q, *rec.ReinsertAt)
			s.shiftAnswered(at)
			res.ReinsertedAt = at
		}
	}

	s.persist(ctx)
	return res, nil
}

// shiftAnswered keeps answered positions aligned after an insert at idx.
func (s *Session) shiftAnswered(idx int) {
	shifted := make(map[int]bool, len(s.answered))
	for i := range s.answered {
		if i >= idx {
			i++
		}
		shifted[i] = true
	}
	s.answered = shifted
}

func (s *Session) persist(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(ctx, s.Bank, s.store); err != nil {
		s.log.Warn("failed to save performance",
			zap.String("session_id", s.ID),
			zap.String("bank", s.Bank),
			zap.Error(err),
		)
	}
}

// Next advances to the following position. It returns false when the
// session has run past its last question.
func (s *Session) Next() bool {
	if s.index < s.queue.Len() {
		s.index++
	}
	return s.index < s.queue.Len()
}

// Previous steps back one position if possible.
func (s *Session) Previous() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Done reports whether every position has been passed.
func (s *Session) Done() bool {
	return s.index >= s.queue.Len()
}

// Summary reports progress so far.
func (s *Session) Summary() Summary {
	return Summary{
		Mode:        s.Mode,
		Answered:    s.totalAnswered,
		Correct:     s.totalCorrect,
		Missed:      len(s.missed),
		QueueLength: s.queue.Len(),
		Elapsed:     time.Since(s.StartTime),
	}
}
