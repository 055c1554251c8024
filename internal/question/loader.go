package question

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// record is the on-disk shape of one question in a bank dataset.
type record struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Load reads and parses the dataset of bank from dataDir.
func Load(dataDir string, bank Bank) ([]Question, error) {
	if !bank.Available() {
		return nil, fmt.Errorf("%w: %s", ErrBankUnavailable, bank.Key)
	}
	path := filepath.Join(dataDir, bank.Dataset)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	qs, err := Parse(bank.Key, raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return qs, nil
}

// Parse decodes a bank dataset. Every identifier is namespaced with
// bankKey; records without an id get "q-<position>" (1-based).
func Parse(bankKey string, raw []byte) ([]Question, error) {
	if err := validateDataset(raw); err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	seen := make(map[string]int, len(records))
	qs := make([]Question, 0, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = fmt.Sprintf("q-%d", i+1)
		}
		id = Namespace(bankKey, id)
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate question id %q at records %d and %d", id, prev, i)
		}
		seen[id] = i

		q := Question{
			ID:          id,
			Prompt:      strings.TrimSpace(r.Prompt),
			Options:     r.Options,
			Answer:      strings.ToUpper(r.Answer),
			Explanation: strings.TrimSpace(r.Explanation),
		}
		if q.CorrectIndex() < 0 {
			return nil, fmt.Errorf("question %q: answer %q does not name one of %d options", id, r.Answer, len(r.Options))
		}
		qs = append(qs, q)
	}
	return qs, nil
}
