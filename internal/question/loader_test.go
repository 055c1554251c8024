package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDataset = `[
  {"id": "q-1", "prompt": "First?", "options": ["a", "b", "c", "d"], "answer": "c", "explanation": "because"},
  {"prompt": "Second?", "options": ["yes", "no"], "answer": "A"}
]`

func TestParse_Valid(t *testing.T) {
	qs, err := Parse("pmle", []byte(validDataset))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "pmle-q-1", qs[0].ID)
	assert.Equal(t, "C", qs[0].Answer)
	assert.Equal(t, "c", qs[0].CorrectOption())
	assert.Equal(t, "because", qs[0].Explanation)

	// Missing ids fall back to the positional scheme.
	assert.Equal(t, "pmle-q-2", qs[1].ID)
}

func TestParse_KeepsExistingNamespace(t *testing.T) {
	raw := `[{"id": "pmle-q-9", "prompt": "P", "options": ["a", "b"], "answer": "A"}]`
	qs, err := Parse("pmle", []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "pmle-q-9", qs[0].ID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"not an array", `{"prompt": "x"}`},
		{"missing prompt", `[{"options": ["a", "b"], "answer": "A"}]`},
		{"too few options", `[{"prompt": "P", "options": ["a"], "answer": "A"}]`},
		{"bad answer designator", `[{"prompt": "P", "options": ["a", "b"], "answer": "AB"}]`},
		{"answer outside options", `[{"prompt": "P", "options": ["a", "b"], "answer": "D"}]`},
		{"duplicate ids", `[
			{"id": "q-1", "prompt": "P", "options": ["a", "b"], "answer": "A"},
			{"id": "q-1", "prompt": "Q", "options": ["a", "b"], "answer": "B"}
		]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("pmle", []byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pmle.json"), []byte(validDataset), 0o644))

	bank, err := Lookup("pmle")
	require.NoError(t, err)

	qs, err := Load(dir, bank)
	require.NoError(t, err)
	assert.Equal(t, []string{"pmle-q-1", "pmle-q-2"}, IDs(qs))
}

func TestLoad_Unavailable(t *testing.T) {
	bank, err := Lookup("cdl")
	require.NoError(t, err)

	_, err = Load(t.TempDir(), bank)
	assert.True(t, errors.Is(err, ErrBankUnavailable))
}

func TestLoad_MissingFile(t *testing.T) {
	bank, err := Lookup("pde")
	require.NoError(t, err)

	_, err = Load(t.TempDir(), bank)
	assert.Error(t, err)
}
