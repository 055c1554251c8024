package performance

import (
	"sort"

	"github.com/abhisek/certdrill/internal/question"
)

// Store maps question identifiers to records for a single bank. It is an
// explicitly owned value: switching banks means switching Store instances.
// Store is not safe for concurrent use; the host serializes all access.
type Store struct {
	records map[string]Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]Record)}
}

// Get returns the record for id.
func (s *Store) Get(id string) (Record, bool) {
	r, ok := s.records[id]
	return r, ok
}

// Lookup returns the record for id, or a zeroed record when absent.
func (s *Store) Lookup(id string) Record {
	if r, ok := s.records[id]; ok {
		return r
	}
	return NewRecord(id)
}

// Put stores rec under its QuestionID.
func (s *Store) Put(rec Record) {
	s.records[rec.QuestionID] = rec
}

// Outcome returns the last outcome for id. Absent records count as
// never answered.
func (s *Store) Outcome(id string) Outcome {
	return s.records[id].LastOutcome
}

// NeedsReview reports whether the question has no record, has never been
// answered, or was last answered incorrectly.
func (s *Store) NeedsReview(id string) bool {
	return s.Outcome(id) != OutcomeCorrect
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// IDs returns all record identifiers, sorted.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EnsureAll creates zeroed records for questions not yet tracked and
// returns how many were created. Existing records are left untouched.
func (s *Store) EnsureAll(qs []question.Question) int {
	created := 0
	for _, q := range qs {
		if _, ok := s.records[q.ID]; ok {
			continue
		}
		s.records[q.ID] = NewRecord(q.ID)
		created++
	}
	return created
}
