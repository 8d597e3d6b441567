package ingestion

import (
	"context"
	"fmt"

	"github.com/guttosm/etfpulse/internal/domain/models"
	"github.com/guttosm/etfpulse/internal/storage"
)

// loadAndPersistFile reads one <SYMBOL>.json price file, validates it and
// persists it in batches. It fails on:
//   - unreadable or malformed JSON
//   - rows without an ISO date or a numeric close
//   - non-positive closes, which the statistics engine would reject later
//   - two rows for the same date
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - store:  JSON loader.
//   - path:   file path.
//   - symbol: normalized ticker the rows belong to.
//   - repo:   repository for DB insertion.
//   - batch:  batch size for inserts (e.g., 5000).
func loadAndPersistFile(ctx context.Context, store storage.ListLoader, path, symbol string, repo storage.IngestionRepository, batch int) (int, error) {
	items, err := store.LoadList(path)
	if err != nil {
		return 0, err
	}

	points, err := storage.ParsePricePoints(items)
	if err != nil {
		return 0, err
	}
	if err := validateSeries(points); err != nil {
		return 0, err
	}

	if batch <= 0 {
		batch = defaultBatchSize
	}

	for start := 0; start < len(points); start += batch {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		end := start + batch
		if end > len(points) {
			end = len(points)
		}
		if err := repo.InsertPricesBatch(ctx, symbol, points[start:end]); err != nil {
			return 0, fmt.Errorf("flush batch ending row %d: %w", end, err)
		}
	}

	return len(points), nil
}

// validateSeries expects points sorted by date, as ParsePricePoints returns them.
func validateSeries(points []models.PricePoint) error {
	for i, p := range points {
		if !(p.Close > 0) {
			return fmt.Errorf("%s: close must be positive, got %v", p.Date.Format("2006-01-02"), p.Close)
		}
		if i > 0 && p.Date.Equal(points[i-1].Date) {
			return fmt.Errorf("%s: duplicate date", p.Date.Format("2006-01-02"))
		}
	}
	return nil
}
