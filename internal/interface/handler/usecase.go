// Package handler implements the HTTP route layer: parameter typing,
// not-found translation, and JSON serialization. No business logic lives
// here.
package handler

import (
	"context"
	"time"

	"market_backend/internal/domain/entity"
)

// MarketUsecase is the façade surface the handlers depend on. Following Go
// convention the interface is declared on the consumer side.
type MarketUsecase interface {
	GetStockQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	GetStockHistory(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error)
	GetIndexQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	ListIndices(ctx context.Context, limit, offset int) ([]entity.IndexListing, error)
	GetForexRate(ctx context.Context, base, quote string) (*entity.ForexRate, error)
	GetCommodityPrice(ctx context.Context, name string) (*entity.CommodityPrice, error)
	GetCommodityHistory(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error)
	GetCompanyProfile(ctx context.Context, ticker string) (*entity.CompanyProfile, error)
	GetCompanyRatings(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error)
	ListBonds(ctx context.Context, limit, offset int) ([]entity.BondInfo, error)
	GetBondByCountry(ctx context.Context, country string) (*entity.BondInfo, error)
	ListETFs(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error)
	GetETFHoldings(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error)
}
