package entity

import "time"

// ForexRate is the exchange rate for one currency pair.
type ForexRate struct {
	BaseCurrency  string // e.g., "USD"
	QuoteCurrency string // e.g., "EUR"
	Rate          float64
	Timestamp     time.Time
}
