package performance

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/certdrill/internal/question"
)

// timestampLayout matches ECMAScript's toISOString (millisecond UTC), the
// format existing saved progress uses.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// wireRecord is the persisted shape of a Record.
type wireRecord struct {
	QuestionID     string  `json:"questionId"`
	CorrectCount   *int    `json:"correctCount"`
	IncorrectCount *int    `json:"incorrectCount"`
	LastAnswered   *string `json:"lastAnswered"`
	LastCorrect    *bool   `json:"lastCorrect"`
	ScheduledNext  *int    `json:"scheduledNext"`
}

// RecordError describes a persisted entry that could not be restored
// verbatim. ID is empty when the entry was discarded outright.
type RecordError struct {
	Index int
	ID    string
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("entry %d discarded: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("entry %d (%s) reset: %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

var (
	errMissingField  = errors.New("missing required field")
	errNegativeCount = errors.New("negative answer count")
	errInconsistent  = errors.New("answer time and outcome must both be set or both be null")
)

// Marshal encodes the store as a JSON array of [id, record] pairs, sorted
// by id.
func Marshal(s *Store) ([]byte, error) {
	pairs := make([][2]any, 0, s.Len())
	for _, id := range s.IDs() {
		r := s.records[id]
		pairs = append(pairs, [2]any{id, toWire(r)})
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("marshal performance: %w", err)
	}
	return b, nil
}

func toWire(r Record) wireRecord {
	correct, incorrect := r.CorrectCount, r.IncorrectCount
	w := wireRecord{
		QuestionID:     r.QuestionID,
		CorrectCount:   &correct,
		IncorrectCount: &incorrect,
	}
	if r.Answered() {
		ts := r.LastAnsweredAt.UTC().Format(timestampLayout)
		w.LastAnswered = &ts
	}
	switch r.LastOutcome {
	case OutcomeCorrect:
		v := true
		w.LastCorrect = &v
	case OutcomeIncorrect:
		v := false
		w.LastCorrect = &v
		if r.ReinsertAt != nil {
			at := *r.ReinsertAt
			w.ScheduledNext = &at
		}
	}
	return w
}

// Unmarshal decodes data saved by Marshal for bankKey. It never fails as a
// whole: a corrupt container yields an empty store, unreadable entries are
// dropped, and entries with a readable id but a malformed body are replaced
// by a zeroed record. Every such recovery is reported in the returned
// error slice.
//
// Identifiers lacking the bank's namespace are migrated to carry it. If a
// migrated identifier collides with an entry that was already namespaced,
// the namespaced entry wins.
func Unmarshal(bankKey string, data []byte) (*Store, []error) {
	s := NewStore()

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return s, []error{fmt.Errorf("decode performance container: %w", err)}
	}

	var errs []error
	migrated := make(map[string]bool)
	for i, raw := range entries {
		id, body, err := splitEntry(raw)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}

		legacy := bankKey != "" && !question.HasNamespace(bankKey, id)
		id = question.Namespace(bankKey, id)

		rec, err := fromWire(id, body)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, ID: id, Err: err})
			rec = NewRecord(id)
		}

		if _, exists := s.records[id]; exists && legacy && !migrated[id] {
			continue
		}
		s.records[id] = rec
		migrated[id] = legacy
	}
	return s, errs
}

func splitEntry(raw json.RawMessage) (string, json.RawMessage, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return "", nil, fmt.Errorf("decode pair: %w", err)
	}
	if len(pair) != 2 {
		return "", nil, fmt.Errorf("pair has %d elements, want 2", len(pair))
	}
	var id string
	if err := json.Unmarshal(pair[0], &id); err != nil {
		return "", nil, fmt.Errorf("decode id: %w", err)
	}
	if id == "" {
		return "", nil, fmt.Errorf("empty id")
	}
	return id, pair[1], nil
}

func fromWire(id string, body json.RawMessage) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(body, &w); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	if w.CorrectCount == nil || w.IncorrectCount == nil {
		return Record{}, errMissingField
	}
	if *w.CorrectCount < 0 || *w.IncorrectCount < 0 {
		return Record{}, errNegativeCount
	}

	rec := Record{
		QuestionID:     id,
		CorrectCount:   *w.CorrectCount,
		IncorrectCount: *w.IncorrectCount,
	}

	if w.LastAnswered != nil {
		ts, err := time.Parse(time.RFC3339Nano, *w.LastAnswered)
		if err != nil {
			return Record{}, fmt.Errorf("parse lastAnswered: %w", err)
		}
		rec.LastAnsweredAt = ts
	}

	if (w.LastCorrect != nil) != rec.Answered() {
		return Record{}, errInconsistent
	}
	if w.LastCorrect != nil {
		if *w.LastCorrect {
			rec.LastOutcome = OutcomeCorrect
		} else {
			rec.LastOutcome = OutcomeIncorrect
			if w.ScheduledNext != nil {
				at := *w.ScheduledNext
				rec.ReinsertAt = &at
			}
		}
	}
	return rec, nil
}
