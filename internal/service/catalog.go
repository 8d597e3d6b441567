package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/etfpulse/internal/domain/models"
	"github.com/guttosm/etfpulse/internal/logger"
	"github.com/guttosm/etfpulse/internal/stats"
	"github.com/guttosm/etfpulse/internal/storage"
)

// DefaultMaxRangeDays caps the span of a price window when Options leaves it unset.
const DefaultMaxRangeDays = 3650

var (
	// ErrInvalidRange is returned when both bounds are given and from is after to.
	ErrInvalidRange = errors.New("from must be <= to")

	// ErrRangeTooLarge is matched by every *RangeTooLargeError.
	ErrRangeTooLarge = errors.New("date range too large")
)

// RangeTooLargeError reports an effective window wider than MaxDays.
type RangeTooLargeError struct {
	MaxDays int
}

func (e *RangeTooLargeError) Error() string {
	return fmt.Sprintf("date range too large (max %d days)", e.MaxDays)
}

func (e *RangeTooLargeError) Is(target error) bool { return target == ErrRangeTooLarge }

// Options tunes the catalog service. Zero values select the defaults.
type Options struct {
	TradingDays  int
	MaxRangeDays int
}

// PriceWindow is a date-filtered slice of one symbol's price series.
// From and To are the effective inclusive bounds.
type PriceWindow struct {
	Symbol string
	From   time.Time
	To     time.Time
	Points []models.PricePoint
}

// CatalogService exposes the ETF catalog, price windows and their risk statistics.
// It decouples HTTP handlers from the storage backend.
type CatalogService interface {
	ListETFs(ctx context.Context) ([]models.ETF, error)
	GetETF(ctx context.Context, symbol string) (*models.ETF, error)
	GetPrices(ctx context.Context, symbol string, from, to *time.Time) (*PriceWindow, error)
	GetStats(ctx context.Context, symbol string, from, to *time.Time) (*models.Stats, error)
}

type catalogService struct {
	etfs   storage.ETFRepository
	prices storage.PriceRepository
	opts   Options
}

func NewCatalogService(etfs storage.ETFRepository, prices storage.PriceRepository, opts Options) CatalogService {
	if opts.TradingDays <= 0 {
		opts.TradingDays = stats.DefaultTradingDays
	}
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = DefaultMaxRangeDays
	}
	return &catalogService{etfs: etfs, prices: prices, opts: opts}
}

func (s *catalogService) ListETFs(ctx context.Context) ([]models.ETF, error) {
	return s.etfs.ListETFs(ctx)
}

func (s *catalogService) GetETF(ctx context.Context, symbol string) (*models.ETF, error) {
	return s.etfs.GetETF(ctx, symbol)
}

// GetPrices returns the points of symbol with from <= date <= to.
//
// Behavior:
//   - from > to (both set) fails with ErrInvalidRange before any I/O.
//   - An empty series is reported as a *storage.NotFoundError.
//   - Missing bounds default to the first/last available date.
//   - A window wider than MaxRangeDays fails with *RangeTooLargeError.
func (s *catalogService) GetPrices(ctx context.Context, symbol string, from, to *time.Time) (*PriceWindow, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidRange
	}

	normalized := storage.NormalizeSymbol(symbol)
	points, err := s.prices.GetPrices(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, &storage.NotFoundError{
			Resource: "prices",
			Key:      normalized,
			Message:  "No price data for symbol: " + normalized,
		}
	}

	effFrom := points[0].Date
	if from != nil {
		effFrom = *from
	}
	effTo := points[len(points)-1].Date
	if to != nil {
		effTo = *to
	}

	if spanDays(effFrom, effTo) > s.opts.MaxRangeDays {
		return nil, &RangeTooLargeError{MaxDays: s.opts.MaxRangeDays}
	}

	filtered := make([]models.PricePoint, 0, len(points))
	for _, p := range points {
		if !p.Date.Before(effFrom) && !p.Date.After(effTo) {
			filtered = append(filtered, p)
		}
	}

	return &PriceWindow{Symbol: normalized, From: effFrom, To: effTo, Points: filtered}, nil
}

// GetStats computes volatility and max drawdown over the same window GetPrices
// would return. stats.ErrInvalidInput is returned unchanged.
func (s *catalogService) GetStats(ctx context.Context, symbol string, from, to *time.Time) (*models.Stats, error) {
	window, err := s.GetPrices(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}

	res, err := stats.ComputeStats(models.Closes(window.Points), s.opts.TradingDays)
	if err != nil {
		logger.Component("service").Warn().
			Str("symbol", window.Symbol).
			Int("points", len(window.Points)).
			Err(err).
			Msg("stats rejected price series")
		return nil, err
	}

	return &models.Stats{
		Symbol:               window.Symbol,
		From:                 window.From,
		To:                   window.To,
		Count:                len(window.Points),
		TradingDays:          s.opts.TradingDays,
		VolatilityAnnualized: res.VolatilityAnnualized,
		MaxDrawdown:          res.MaxDrawdown,
	}, nil
}

// spanDays counts whole days between two dates, like date subtraction does.
func spanDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
