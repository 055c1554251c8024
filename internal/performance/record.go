package performance

import "time"

// Outcome is the result of the most recent answer to a question.
type Outcome int

const (
	OutcomeNever     Outcome = iota // never answered
	OutcomeCorrect                  // last answer was correct
	OutcomeIncorrect                // last answer was incorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "never"
	}
}

// Record is the performance history of one question.
//
// Counts never decrease. LastOutcome is OutcomeNever exactly when the
// question has not been answered, and ReinsertAt is set only while
// LastOutcome is OutcomeIncorrect.
type Record struct {
	QuestionID     string
	CorrectCount   int
	IncorrectCount int

	// LastAnsweredAt is the zero time for a never-answered question.
	LastAnsweredAt time.Time
	LastOutcome    Outcome

	// ReinsertAt is the session queue position at which the question
	// should reappear after an incorrect answer. Nil otherwise.
	ReinsertAt *int
}

// NewRecord returns a zeroed record for id.
func NewRecord(id string) Record {
	return Record{QuestionID: id}
}

// Answered reports whether the question has been answered at least once.
func (r Record) Answered() bool {
	return !r.LastAnsweredAt.IsZero()
}

// Attempts returns the total number of answers recorded.
func (r Record) Attempts() int {
	return r.CorrectCount + r.IncorrectCount
}
