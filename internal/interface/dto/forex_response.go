package dto

import "market_backend/internal/domain/entity"

// ForexRateResponse is the wire shape for a currency-pair rate.
type ForexRateResponse struct {
	BaseCurrency  string  `json:"base_currency"`
	QuoteCurrency string  `json:"quote_currency"`
	Rate          float64 `json:"rate"`
	Timestamp     string  `json:"timestamp"`
}

// NewForexRateResponse converts a canonical rate.
func NewForexRateResponse(r *entity.ForexRate) ForexRateResponse {
	return ForexRateResponse{
		BaseCurrency:  r.BaseCurrency,
		QuoteCurrency: r.QuoteCurrency,
		Rate:          r.Rate,
		Timestamp:     formatTimestamp(r.Timestamp),
	}
}
