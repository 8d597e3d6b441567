package models

import "time"

// Stats is the risk summary of one symbol over a date window.
//
// Fields:
//   - Symbol: The symbol the statistics were computed for.
//   - From/To: Effective (inclusive) bounds of the window.
//   - Count: Number of price points inside the window.
//   - TradingDays: Annualization factor used for the volatility.
//   - VolatilityAnnualized: Sample stdev of daily returns × sqrt(TradingDays).
//   - MaxDrawdown: Largest peak-to-trough decline, as a fraction in [0, 1].
type Stats struct {
	Symbol               string
	From                 time.Time
	To                   time.Time
	Count                int
	TradingDays          int
	VolatilityAnnualized float64
	MaxDrawdown          float64
}
