package dto

import (
	"github.com/guttosm/etfpulse/internal/domain/models"
)

// DateLayout is the wire format of every date in requests and responses.
const DateLayout = "2006-01-02"

// PriceItem is one serialized daily close.
type PriceItem struct {
	Date  string  `json:"date" example:"2024-01-05"`
	Close float64 `json:"close" example:"101.25"`
}

// PricesResponse is returned by GET /v1/prices/{symbol}.
//
// From and To are the effective bounds of the window: the requested ones, or
// the first/last available date when a bound is omitted.
type PricesResponse struct {
	Symbol   string      `json:"symbol" example:"VT"`
	Currency string      `json:"currency" example:"USD"`
	From     string      `json:"from" example:"2024-01-02"`
	To       string      `json:"to" example:"2024-01-31"`
	Count    int         `json:"count" example:"21"`
	Items    []PriceItem `json:"items"`
}

// NewPriceItems converts domain price points to their wire representation.
func NewPriceItems(points []models.PricePoint) []PriceItem {
	items := make([]PriceItem, 0, len(points))
	for _, p := range points {
		items = append(items, PriceItem{Date: p.Date.Format(DateLayout), Close: p.Close})
	}
	return items
}
