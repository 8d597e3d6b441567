package dto

import "github.com/guttosm/etfpulse/internal/domain/models"

// StatsResponse is returned by GET /v1/stats/{symbol}.
type StatsResponse struct {
	Symbol               string  `json:"symbol" example:"SPY"`
	From                 string  `json:"from" example:"2024-01-02"`
	To                   string  `json:"to" example:"2024-01-31"`
	Count                int     `json:"count" example:"21"`
	TradingDays          int     `json:"trading_days" example:"252"`
	VolatilityAnnualized float64 `json:"volatility_annualized" example:"0.1532"`
	MaxDrawdown          float64 `json:"max_drawdown" example:"0.0421"`
}

// NewStatsResponse maps the domain statistics to the API contract.
func NewStatsResponse(s models.Stats) StatsResponse {
	return StatsResponse{
		Symbol:               s.Symbol,
		From:                 s.From.Format(DateLayout),
		To:                   s.To.Format(DateLayout),
		Count:                s.Count,
		TradingDays:          s.TradingDays,
		VolatilityAnnualized: s.VolatilityAnnualized,
		MaxDrawdown:          s.MaxDrawdown,
	}
}
