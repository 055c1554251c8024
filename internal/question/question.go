package question

import (
	"strings"
)

// Question is a single multiple-choice item from a bank. Questions are
// owned by the host and never mutated after loading.
type Question struct {
	// ID is unique within a loaded bank and always carries the bank's
	// namespace prefix, e.g. "pmle-q-3".
	ID string

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options are the answer choices in display order. Option i is
	// designated by the letter 'A'+i.
	Options []string

	// Answer designates the correct option by letter ("A", "B", ...).
	Answer string

	// Explanation is shown after the learner answers.
	Explanation string
}

// OptionLetter returns the designator for option index i.
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

// CorrectIndex returns the index of the correct option, or -1 if the
// designator does not name one of the options.
func (q Question) CorrectIndex() int {
	a := strings.ToUpper(strings.TrimSpace(q.Answer))
	if len(a) != 1 {
		return -1
	}
	idx := int(a[0] - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return -1
	}
	return idx
}

// CorrectOption returns the text of the correct option, or "" if the
// designator is invalid.
func (q Question) CorrectOption() string {
	idx := q.CorrectIndex()
	if idx < 0 {
		return ""
	}
	return q.Options[idx]
}

// ChoiceIndex returns the index of the option choice names, or -1. A letter naming
// one of the options (case-insensitive) is read as a letter; anything else
// must equal an option's text.
func (q Question) ChoiceIndex(choice string) int {
	c := strings.TrimSpace(choice)
	if len(c) == 1 {
		if i := int(strings.ToUpper(c)[0]) - 'A'; i >= 0 && i < len(q.Options) {
			return i
		}
	}
	for i, opt := range q.Options {
		if c != "" && c == strings.TrimSpace(opt) {
			return i
		}
	}
	return -1
}

// Check reports whether choice names the correct option.
func (q Question) Check(choice string) bool {
	idx := q.CorrectIndex()
	return idx >= 0 && q.ChoiceIndex(choice) == idx
}

// CheckText reports whether text spells out the correct option, ignoring
// case and runs of whitespace.
func (q Question) CheckText(text string) bool {
	want := q.CorrectOption()
	if want == "" {
		return false
	}
	return strings.EqualFold(strings.Join(strings.Fields(text), " "), strings.Join(strings.Fields(want), " "))
}

// Namespace prefixes id with the bank key unless it already carries it.
func Namespace(bankKey, id string) string {
	if bankKey == "" || HasNamespace(bankKey, id) {
		return id
	}
	return bankKey + "-" + id
}

// HasNamespace reports whether id belongs to the bank's namespace.
func HasNamespace(bankKey, id string) bool {
	return strings.HasPrefix(id, bankKey+"-")
}

// IDs returns the identifiers of qs in order.
func IDs(qs []Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
