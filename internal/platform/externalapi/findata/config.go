// Package findata provides the client for the Findata market-data API, the
// single concrete MarketRepository implementation.
package findata

import "time"

// Config holds configuration for the Findata API client.
type Config struct {
	APIKey  string        // Credential appended to every request
	BaseURL string        // e.g., "https://api.findata.io/v1"
	Timeout time.Duration // Overall ceiling for one request
}
