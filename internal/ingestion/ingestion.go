package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/etfpulse/internal/logger"
	"github.com/guttosm/etfpulse/internal/storage"
)

const (
	catalogFile      = "etfs.json"
	pricesSubdir     = "prices"
	defaultBatchSize = 5000
	maxParallel      = 8
)

// ProcessDirectory loads a JSON data set into the ingestion repository.
//
//   - dataDir: root of the data set (etfs.json + prices/<SYMBOL>.json).
//   - repo:    write side of the storage layer (PostgreSQL in production).
//
// Behavior:
//   - Reads the catalog and upserts every fund before touching prices.
//   - Processes one price file per catalog symbol, up to parallel at a time
//     (0 means min(NumCPU, 8)).
//   - A symbol without a price file is logged and skipped.
//   - A symbol already present in the ingestion log is skipped unless force is set.
//   - Prices are inserted in batches of defaultBatchSize.
//   - If any symbol fails, the rest are cancelled and that error is returned.
func ProcessDirectory(ctx context.Context, dataDir string, repo storage.IngestionRepository, parallel int, force bool) error {
	log := logger.Component("ingestion")
	store := storage.NewJSONStore()

	catalog := storage.NewJSONETFRepository(store, filepath.Join(dataDir, catalogFile))
	etfs, err := catalog.ListETFs(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := repo.UpsertETFs(ctx, etfs); err != nil {
		return fmt.Errorf("upsert catalog: %w", err)
	}

	workers := resolveParallel(parallel)
	pricesDir := filepath.Join(dataDir, pricesSubdir)
	log.Info().Int("etfs", len(etfs)).Str("dir", dataDir).Int("max_parallel", workers).Msg("ingestion start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, etf := range etfs {
		idx := i
		symbol := etf.Symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			path := storage.PriceFilePath(pricesDir, symbol)
			base := filepath.Base(path)

			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					log.Warn().Str("symbol", symbol).Str("file", base).Msg("no price file, skipping")
					return nil
				}
				return fmt.Errorf("symbol %s: stat %s: %w", symbol, path, err)
			}

			// Idempotency: skip if already ingested, unless force
			exists, err := repo.HasIngestionForSymbol(gctx, symbol)
			if err != nil {
				log.Error().Str("symbol", symbol).Err(err).Msg("check ingestion log failed")
				return fmt.Errorf("symbol %s: check ingestion log: %w", symbol, err)
			}
			if exists && !force {
				log.Info().Int("idx", idx+1).Int("total", len(etfs)).Str("symbol", symbol).Bool("skipped", true).Msg("already ingested")
				return nil
			}

			// Clears rows from a forced reload or from an earlier run that died
			// before writing its ingestion log entry.
			if err := repo.DeletePricesBySymbol(gctx, symbol); err != nil {
				log.Error().Str("symbol", symbol).Err(err).Msg("delete existing failed")
				return fmt.Errorf("symbol %s: delete existing: %w", symbol, err)
			}

			total, err := loadAndPersistFile(gctx, store, path, symbol, repo, defaultBatchSize)
			if err != nil {
				log.Error().Str("symbol", symbol).Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("symbol %s: %w", symbol, err)
			}
			if err := repo.UpsertIngestionLog(gctx, symbol, base, total); err != nil {
				log.Error().Str("symbol", symbol).Err(err).Msg("update ingestion log failed")
				return fmt.Errorf("symbol %s: upsert ingestion log: %w", symbol, err)
			}

			log.Info().Int("idx", idx+1).Int("total", len(etfs)).Str("symbol", symbol).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Int("etfs", len(etfs)).Msg("ingestion finished")
	return nil
}

// resolveParallel clamps the requested worker count to [1, maxParallel],
// defaulting to the CPU count.
func resolveParallel(parallel int) int {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > maxParallel {
		parallel = maxParallel
	}
	if parallel < 1 {
		parallel = 1
	}
	return parallel
}
