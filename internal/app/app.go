package app

import (
	"fmt"
	"io/fs"

	"github.com/pterm/pterm"

	"github.com/larahenke/giro/internal/account"
	"github.com/larahenke/giro/internal/config"
	"github.com/larahenke/giro/internal/reference"
	"github.com/larahenke/giro/internal/service"
	"github.com/larahenke/giro/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	State   *account.State
	Config  *config.Config
}

// NewApp opens the session: in-memory database, randomized account, and the
// best-effort reference dataset load. Everything is gone again when the
// returned cleanup runs and the process exits.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbStore, err := store.NewStore(migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize session database: %w", err)
	}

	balanceMin, balanceMax := cfg.Account.BalanceBoundsCents()
	state := account.NewState(balanceMin, balanceMax, cfg.Account.LimitCents())

	entries := loadReference(cfg.Reference.Path)
	if err := seedReference(dbStore, entries); err != nil {
		pterm.Warning.Printf("Referenzdaten konnten nicht gespeichert werden: %v\n", err)
	}

	svc := service.NewService(dbStore, state, entries)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing session database: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		State:   state,
		Config:  cfg,
	}, cleanup, nil
}

// loadReference never fails the session: without a dataset every transfer is
// simply unverified.
func loadReference(path string) []reference.Entry {
	if path == "" {
		return nil
	}

	entries, err := reference.Load(path)
	if err != nil {
		pterm.Warning.Printf("Referenzdaten nicht verfügbar (%v) – Abgleich deaktiviert\n", err)
		return nil
	}
	return entries
}

func seedReference(repo store.Repository, entries []reference.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]store.ReferenceRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, store.ReferenceRow{
			Name:        e.Name,
			IBAN:        e.IBAN,
			AmountCents: e.AmountCents,
		})
	}
	return repo.SeedReferenceEntries(rows)
}
