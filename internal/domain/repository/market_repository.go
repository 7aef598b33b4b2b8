// Package repository declares the capability set expected of a market-data
// provider. One concrete adapter implements it today; a second provider can
// be substituted without touching the usecase or handler layers.
package repository

import (
	"context"
	"time"

	"market_backend/internal/domain/entity"
)

// MarketRepository abstracts the upstream market-data provider. Every method
// maps to exactly one provider call; a missing resource is reported as
// apperrors.ErrNotFound, never as a nil-and-nil return.
type MarketRepository interface {
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
