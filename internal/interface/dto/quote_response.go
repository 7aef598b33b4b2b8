// Package dto defines the JSON response shapes of the public API and their
// constructors from canonical entities.
package dto

import (
	"time"

	"market_backend/internal/domain/entity"
)

// timestampLayout renders UTC with an explicit numeric offset ("+00:00"
// rather than "Z") for consumers that cannot parse the Z suffix.
const timestampLayout = "2006-01-02T15:04:05-07:00"

const dateLayout = "2006-01-02"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// QuoteResponse is the wire shape for stock and index quotes.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Exchange      string  `json:"exchange"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	Volume        int64   `json:"volume"`
	Timestamp     string  `json:"timestamp"`
}

// NewQuoteResponse converts a canonical quote.
func NewQuoteResponse(q *entity.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol:        q.Symbol,
		Name:          q.Name,
		Exchange:      q.Exchange,
		Price:         q.Price,
		Change:        q.Change,
		PercentChange: q.PercentChange,
		Volume:        q.Volume,
		Timestamp:     formatTimestamp(q.Timestamp),
	}
}
