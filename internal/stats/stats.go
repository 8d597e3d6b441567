// Package stats computes risk statistics from daily closing prices.
//
// All functions are pure: they keep no state and do no I/O, so they are safe
// to call concurrently from any number of goroutines.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultTradingDays is the annualization factor used when callers pass a
// non-positive number of trading days.
const DefaultTradingDays = 252

// ErrInvalidInput is returned when a price series of length >= 2 contains a
// value that is zero or negative.
var ErrInvalidInput = errors.New("prices must be positive")

// Result holds the statistics derived from one price series.
type Result struct {
	VolatilityAnnualized float64
	MaxDrawdown          float64
}

// DailyReturns returns the simple returns between consecutive prices,
// returns[i] = prices[i+1]/prices[i] - 1.
//
// Fewer than two prices yield an empty slice and no error. Otherwise every
// price must be strictly positive or ErrInvalidInput is returned.
func DailyReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return []float64{}, nil
	}
	if err := validatePositive(prices); err != nil {
		return nil, err
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = prices[i]/prices[i-1] - 1
	}
	return returns, nil
}

// VolatilityAnnualized returns the sample standard deviation (n-1) of returns
// scaled by sqrt(tradingDays). It returns exactly 0 for fewer than two
// observations. A non-positive tradingDays selects DefaultTradingDays.
func VolatilityAnnualized(returns []float64, tradingDays int) float64 {
	if len(returns) < 2 {
		return 0
	}
	if tradingDays <= 0 {
		tradingDays = DefaultTradingDays
	}

	// stat.MeanVariance applies Bessel's correction when weights are nil.
	_, variance := stat.MeanVariance(returns, nil)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance) * math.Sqrt(float64(tradingDays))
}

// MaxDrawdown returns the largest peak-to-trough decline of prices as a
// fraction in [0, 1]. The series is walked once, in order.
//
// Fewer than two prices yield 0. Otherwise every price must be strictly
// positive or ErrInvalidInput is returned.
func MaxDrawdown(prices []float64) (float64, error) {
	if len(prices) < 2 {
		return 0, nil
	}
	if err := validatePositive(prices); err != nil {
		return 0, err
	}

	peak := prices[0]
	maxDD := 0.0
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if dd := (peak - p) / peak; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD, nil
}

// ComputeStats derives annualized volatility from the daily returns of prices
// and max drawdown from prices themselves. Returns are computed first, so a
// non-positive price is always reported by DailyReturns.
func ComputeStats(prices []float64, tradingDays int) (Result, error) {
	returns, err := DailyReturns(prices)
	if err != nil {
		return Result{}, err
	}
	vol := VolatilityAnnualized(returns, tradingDays)

	dd, err := MaxDrawdown(prices)
	if err != nil {
		return Result{}, err
	}

	return Result{VolatilityAnnualized: vol, MaxDrawdown: dd}, nil
}

// validatePositive checks the whole series before any computation starts.
func validatePositive(prices []float64) error {
	for _, p := range prices {
		if !(p > 0) {
			return ErrInvalidInput
		}
	}
	return nil
}
