// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"market_backend/internal/config"
	"market_backend/internal/domain/repository"
	"market_backend/internal/platform/externalapi/findata"
	infrahttp "market_backend/internal/platform/http"
)

// NewMarket creates the fully configured Findata adapter behind the
// MarketRepository abstraction.
func NewMarket(cfg *config.Config) repository.MarketRepository {
	fcfg := findata.Config{
		APIKey:  cfg.FindataAPIKey,
		BaseURL: cfg.FindataBaseURL,
		Timeout: cfg.UpstreamTimeout,
	}
	httpClient := infrahttp.NewHTTPClient(fcfg.Timeout)
	return findata.New(fcfg, httpClient)
}
