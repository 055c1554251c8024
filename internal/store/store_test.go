package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if err := s.db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestMigrateCreatesKVTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)

	// Running it again on an existing table is a no-op.
	require.NoError(t, s.migrate(context.Background()))
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

// kvContract runs the same behavioral checks against any KV.
func kvContract(t *testing.T, kv KV) {
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "absent key should report ok=false")

	require.NoError(t, kv.Set(ctx, "flashcard-performance-pmle", []byte(`[1]`)))
	require.NoError(t, kv.Set(ctx, "flashcard-performance-pde", []byte(`[2]`)))
	require.NoError(t, kv.Set(ctx, "flashcard-performance", []byte(`[3]`)))
	require.NoError(t, kv.Set(ctx, LastBankKey, []byte("pmle")))

	v, ok, err := kv.Get(ctx, "flashcard-performance-pmle")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(v))

	// Overwrite.
	require.NoError(t, kv.Set(ctx, "flashcard-performance-pmle", []byte(`[4]`)))
	v, _, err = kv.Get(ctx, "flashcard-performance-pmle")
	require.NoError(t, err)
	assert.Equal(t, `[4]`, string(v))

	keys, err := kv.Keys(ctx, "flashcard-performance")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"flashcard-performance",
		"flashcard-performance-pde",
		"flashcard-performance-pmle",
	}, keys)

	require.NoError(t, kv.Delete(ctx, "flashcard-performance-pde"))
	require.NoError(t, kv.Delete(ctx, "never-set"))
	_, ok, err = kv.Get(ctx, "flashcard-performance-pde")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.DeletePrefix(ctx, "flashcard-performance"))
	keys, err = kv.Keys(ctx, "flashcard-performance")
	require.NoError(t, err)
	assert.Empty(t, keys)

	// Unrelated keys survive a prefix delete.
	v, ok, err = kv.Get(ctx, LastBankKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "pmle", string(v))
}

func TestSQLiteKV(t *testing.T) {
	kvContract(t, openTestStore(t))
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemory())
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", string(v))
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[0] = 'x'

	v, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))
}

func TestDefaultDBPath_Env(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "drill.db")
	t.Setenv("CERTDRILL_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CERTDRILL_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "certdrill", "certdrill.db"), got)
}
