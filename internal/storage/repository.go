package storage

import (
	"context"
	"time"

	"github.com/guttosm/etfpulse/internal/domain/models"
)

// ETFRepository gives read access to the ETF catalog.
type ETFRepository interface {
	ListETFs(ctx context.Context) ([]models.ETF, error)
	GetETF(ctx context.Context, symbol string) (*models.ETF, error)
}

// PriceRepository gives read access to daily closes.
// GetPrices returns points sorted by date ascending.
type PriceRepository interface {
	GetPrices(ctx context.Context, symbol string) ([]models.PricePoint, error)
}

// IngestionRepository is the write side used when loading the JSON data set into Postgres.
type IngestionRepository interface {
	UpsertETFs(ctx context.Context, etfs []models.ETF) error
	InsertPricesBatch(ctx context.Context, symbol string, points []models.PricePoint) error
	HasIngestionForSymbol(ctx context.Context, symbol string) (bool, error)
	UpsertIngestionLog(ctx context.Context, symbol, filename string, rowCount int) error
	DeletePricesBySymbol(ctx context.Context, symbol string) error
}

// toDate strips the clock part and pins t to UTC.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
