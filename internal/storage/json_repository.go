package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/etfpulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// ListLoader is the subset of JSONStore used by the JSON repositories.
type ListLoader interface {
	LoadList(path string) ([]map[string]any, error)
}

type jsonETFRepository struct {
	store ListLoader
	path  string
}

// NewJSONETFRepository reads the catalog from the JSON array at path.
// The file is re-read on every call so edits are visible without a restart.
func NewJSONETFRepository(store ListLoader, path string) ETFRepository {
	return &jsonETFRepository{store: store, path: path}
}

func (r *jsonETFRepository) ListETFs(_ context.Context) ([]models.ETF, error) {
	items, err := r.store.LoadList(r.path)
	if err != nil {
		return nil, err
	}
	etfs := make([]models.ETF, 0, len(items))
	for _, item := range items {
		etfs = append(etfs, toETF(item))
	}
	return etfs, nil
}

func (r *jsonETFRepository) GetETF(ctx context.Context, symbol string) (*models.ETF, error) {
	normalized := NormalizeSymbol(symbol)
	etfs, err := r.ListETFs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range etfs {
		if etfs[i].Symbol == normalized {
			return &etfs[i], nil
		}
	}
	return nil, &NotFoundError{
		Resource: "etf",
		Key:      normalized,
		Message:  "Unknown symbol: " + normalized,
	}
}

func toETF(item map[string]any) models.ETF {
	return models.ETF{
		Symbol:        NormalizeSymbol(stringField(item, "symbol")),
		Name:          stringField(item, "name"),
		Currency:      stringField(item, "currency"),
		InceptionDate: stringField(item, "inception_date"),
	}
}

type jsonPriceRepository struct {
	store ListLoader
	dir   string
}

// NewJSONPriceRepository reads price series from dir/<SYMBOL>.json.
func NewJSONPriceRepository(store ListLoader, dir string) PriceRepository {
	return &jsonPriceRepository{store: store, dir: dir}
}

// GetPrices loads and sorts the series for symbol. Any failure to load the
// file is reported as a *NotFoundError; malformed rows are returned as plain errors.
func (r *jsonPriceRepository) GetPrices(_ context.Context, symbol string) ([]models.PricePoint, error) {
	normalized := NormalizeSymbol(symbol)
	path := PriceFilePath(r.dir, normalized)

	items, err := r.store.LoadList(path)
	if err != nil {
		return nil, &NotFoundError{
			Resource: "prices",
			Key:      normalized,
			Message:  "No price data for symbol: " + normalized,
			Err:      err,
		}
	}

	points, err := ParsePricePoints(items)
	if err != nil {
		return nil, fmt.Errorf("prices %s: %w", normalized, err)
	}
	return points, nil
}

// PriceFilePath returns the location of the JSON price file for symbol.
func PriceFilePath(dir, symbol string) string {
	return filepath.Join(dir, NormalizeSymbol(symbol)+".json")
}

// ParsePricePoints converts raw {"date","close"} objects into price points
// sorted by date ascending. Every row must carry an ISO date and a numeric close.
func ParsePricePoints(items []map[string]any) ([]models.PricePoint, error) {
	points := make([]models.PricePoint, 0, len(items))
	for idx, item := range items {
		rawDate, ok := item["date"]
		if !ok {
			return nil, fmt.Errorf("row %d: missing date", idx)
		}
		d, err := time.Parse(dateLayout, fmt.Sprint(rawDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid date: %w", idx, err)
		}

		rawClose, ok := item["close"]
		if !ok {
			return nil, fmt.Errorf("row %d: missing close", idx)
		}
		c, err := toFloat(rawClose)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid close: %w", idx, err)
		}

		points = append(points, models.PricePoint{Date: toDate(d), Close: c})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

// NormalizeSymbol trims and upper-cases a ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func stringField(item map[string]any, key string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
