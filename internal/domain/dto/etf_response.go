package dto

import "github.com/guttosm/etfpulse/internal/domain/models"

// ETFListResponse is returned by GET /v1/etfs.
type ETFListResponse struct {
	Items []models.ETF `json:"items"`
	Count int          `json:"count" example:"5"`
}
