package storage

import (
	"context"
	"fmt"
	"time"

	"pet-grooming-intake/internal/adapters/storage/memory"
	pg "pet-grooming-intake/internal/adapters/storage/postgres"
	"pet-grooming-intake/internal/adapters/storage/sqlite"
	"pet-grooming-intake/internal/adapters/storage/xlsx"
	"pet-grooming-intake/internal/config"
	"pet-grooming-intake/internal/domain/intake"
)

// Open arma el registro según cfg.Backend.
// La función devuelta libera conexiones (puede ser no-op).
func Open(cfg *config.Config) (intake.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewRecordsRepo(), noop, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return sqlite.NewRecordsRepo(db), db.Close, nil

	case config.BackendPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		return pg.NewRecordsRepo(db), db.Close, nil

	default:
		r := xlsx.NewRecordsRepo(cfg.LogFile)
		if err := r.Ensure(); err != nil {
			return nil, nil, fmt.Errorf("prepare %s: %w", cfg.LogFile, err)
		}
		return r, noop, nil
	}
}
