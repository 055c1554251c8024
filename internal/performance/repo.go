package performance

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/certdrill/internal/store"
)

// KeyPrefix prefixes every persisted performance entry. The bare prefix is
// the key used before progress was scoped per bank.
const KeyPrefix = "flashcard-performance"

// StorageKey returns the KV key holding bank's performance.
func StorageKey(bank string) string {
	return KeyPrefix + "-" + bank
}

// Repo loads and saves per-bank stores through a KV backend.
type Repo struct {
	kv  store.KV
	log *zap.Logger
}

// NewRepo creates a Repo. A nil logger disables logging.
func NewRepo(kv store.KV, log *zap.Logger) *Repo {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repo{kv: kv, log: log}
}

// Load returns the store saved for bank, or an empty store if nothing was
// saved. Malformed content is recovered per Unmarshal and logged. Only a
// backend read failure is returned as an error.
func (r *Repo) Load(ctx context.Context, bank string) (*Store, error) {
	data, ok, err := r.kv.Get(ctx, StorageKey(bank))
	if err != nil {
		return nil, fmt.Errorf("read performance for %s: %w", bank, err)
	}
	if !ok {
		return NewStore(), nil
	}

	s, errs := Unmarshal(bank, data)
	for _, e := range errs {
		r.log.Warn("recovered malformed performance data",
			zap.String("bank", bank),
			zap.Error(e),
		)
	}
	return s, nil
}

// Save persists s as bank's performance.
func (r *Repo) Save(ctx context.Context, bank string, s *Store) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, StorageKey(bank), data); err != nil {
		return fmt.Errorf("write performance for %s: %w", bank, err)
	}
	return nil
}

// ResetAll deletes saved performance for every bank, including legacy
// unscoped entries.
func (r *Repo) ResetAll(ctx context.Context) error {
	if err := r.kv.DeletePrefix(ctx, KeyPrefix); err != nil {
		return fmt.Errorf("reset performance: %w", err)
	}
	return nil
}

// SavedBanks lists the banks that have saved performance, sorted by key.
func (r *Repo) SavedBanks(ctx context.Context) ([]string, error) {
	keys, err := r.kv.Keys(ctx, KeyPrefix+"-")
	if err != nil {
		return nil, fmt.Errorf("list saved performance: %w", err)
	}
	banks := make([]string, 0, len(keys))
	for _, k := range keys {
		banks = append(banks, strings.TrimPrefix(k, KeyPrefix+"-"))
	}
	return banks, nil
}
