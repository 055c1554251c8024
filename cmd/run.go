package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/certdrill/internal/config"
	"github.com/abhisek/certdrill/internal/logger"
	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/rng"
	"github.com/abhisek/certdrill/internal/store"
)

// app bundles the collaborators every command needs.
type app struct {
	cfg  *config.Config
	log  *zap.Logger
	st   *store.Store
	repo *performance.Repo
	src  rng.Source
}

// workspace is the loaded state of the selected bank.
type workspace struct {
	bank      question.Bank
	questions []question.Question
	perf      *performance.Store
}

// openApp loads configuration, builds the logger and opens the store.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &app{
		cfg:  cfg,
		log:  log,
		st:   st,
		repo: performance.NewRepo(st, log),
		src:  rng.FromSeed(cfg.Seed),
	}, nil
}

func (a *app) Close() {
	_ = a.log.Sync()
	a.st.Close()
}

// resolveDBPath returns the database path using the configured path
// (--db flag or CERTDRILL_DB) if any, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// currentBank picks the configured bank, then the last used one, then
// the default.
func (a *app) currentBank(ctx context.Context) (question.Bank, error) {
	key := a.cfg.Bank
	if key == "" {
		v, ok, err := a.st.Get(ctx, store.LastBankKey)
		if err != nil {
			return question.Bank{}, err
		}
		if ok {
			key = string(v)
		}
	}
	if key == "" {
		key = question.DefaultBank
	}
	return question.Lookup(key)
}

// loadWorkspace loads the current bank's questions and performance and
// remembers the bank for next time.
func (a *app) loadWorkspace(ctx context.Context) (*workspace, error) {
	bank, err := a.currentBank(ctx)
	if err != nil {
		return nil, err
	}
	qs, err := question.Load(a.cfg.DataDir, bank)
	if err != nil {
		return nil, err
	}
	perf, err := a.repo.Load(ctx, bank.Key)
	if err != nil {
		return nil, err
	}
	if n := perf.EnsureAll(qs); n > 0 {
		a.log.Debug("initialized performance records",
			zap.String("bank", bank.Key),
			zap.Int("created", n),
		)
	}
	if err := a.st.Set(ctx, store.LastBankKey, []byte(bank.Key)); err != nil {
		a.log.Warn("failed to remember bank", zap.String("bank", bank.Key), zap.Error(err))
	}
	return &workspace{bank: bank, questions: qs, perf: perf}, nil
}
