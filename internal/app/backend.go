package app

import (
	"context"
	"fmt"
	"os"

	"github.com/guttosm/etfpulse/config"
	"github.com/guttosm/etfpulse/internal/storage"
)

// backend bundles the repositories of one storage choice with its readiness
// probe and release hook.
type backend struct {
	name   string
	etfs   storage.ETFRepository
	prices storage.PriceRepository
	probe  func(ctx context.Context) error
	close  func()
}

// openBackend builds the repositories selected by cfg.Data.Backend.
// An empty backend name is treated as "json".
func openBackend(cfg config.Config) (*backend, error) {
	switch cfg.Data.Backend {
	case config.BackendJSON, "":
		return jsonBackend(cfg.Data), nil
	case config.BackendPostgres:
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, err
		}
		repo := storage.NewPostgresRepository(db)
		return &backend{
			name:   config.BackendPostgres,
			etfs:   repo,
			prices: repo,
			probe:  repo.Ping,
			close:  func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Data.Backend)
	}
}

func jsonBackend(data config.DataConfig) *backend {
	store := storage.NewJSONStore()
	etfsPath := data.ETFsPath()
	return &backend{
		name:   config.BackendJSON,
		etfs:   storage.NewJSONETFRepository(store, etfsPath),
		prices: storage.NewJSONPriceRepository(store, data.PricesDir()),
		probe: func(context.Context) error {
			_, err := os.Stat(etfsPath)
			return err
		},
		close: func() {},
	}
}
