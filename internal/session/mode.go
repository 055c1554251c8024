package session

import (
	"fmt"
	"strings"
)

// Mode is a study mode. It decides how the session queue is built.
type Mode string

const (
	ModeFlashcard Mode = "flashcard" // weighted order, self-graded
	ModeQuiz      Mode = "quiz"      // weighted order, multiple choice
	ModeReview    Mode = "review"    // only questions needing review, bank order
	ModeMemorise  Mode = "memorise"  // bank order, read-only

	// ModeFillInBlank orders like quiz; the answer is typed out instead of
	// picked from the options.
	ModeFillInBlank Mode = "fill-in-blank"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeFlashcard, ModeQuiz, ModeReview, ModeMemorise, ModeFillInBlank}

// ParseMode converts s to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Weighted reports whether the mode orders questions with the weighted
// builder.
func (m Mode) Weighted() bool {
	return m == ModeFlashcard || m == ModeQuiz || m == ModeFillInBlank
}

// ReadOnly reports whether answers are not accepted in this mode.
func (m Mode) ReadOnly() bool {
	return m == ModeMemorise
}
