// Package entity defines the canonical market-data records returned by the
// façade, independent of any provider's wire shapes.
package entity

import "time"

// Quote represents a price snapshot for an equity, index, or crypto symbol.
type Quote struct {
	Symbol        string    // Ticker symbol (e.g., "AAPL", "^GSPC")
	Name          string    // Display name
	Exchange      string    // Exchange identifier (e.g., "NASDAQ")
	Price         float64   // Last traded price
	Change        float64   // Absolute change since previous close
	PercentChange float64   // Informational only; not guaranteed consistent with Change
	Volume        int64     // Trading volume
	Timestamp     time.Time // Time of the snapshot
}
