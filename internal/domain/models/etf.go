package models

// ETF describes one fund in the catalog.
//
// Fields:
//   - Symbol: Upper-cased ticker (e.g., "SPY").
//   - Name: Human readable fund name.
//   - Currency: Trading currency (e.g., "USD").
//   - InceptionDate: Fund inception date as stored in the catalog (YYYY-MM-DD).
//
// swagger:model ETF
type ETF struct {
	Symbol        string `json:"symbol" example:"SPY"`
	Name          string `json:"name" example:"SPDR S&P 500 ETF Trust"`
	Currency      string `json:"currency" example:"USD"`
	InceptionDate string `json:"inception_date" example:"1993-01-22"`
}
