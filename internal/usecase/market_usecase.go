// Package usecase implements the façade service: one method per resource
// kind, delegating straight to the provider adapter. No caching, no
// retries, no cross-call state.
package usecase

import (
	"context"
	"time"

	"market_backend/internal/domain/entity"
	"market_backend/internal/domain/repository"
)

const (
	// DefaultLimit is the page size used when the caller does not specify one.
	DefaultLimit = 100
	// MaxLimit is the largest page size forwarded upstream.
	MaxLimit = 1000
)

type marketUsecase struct {
	market repository.MarketRepository
}

// NewMarketUsecase creates the façade over the given provider.
func NewMarketUsecase(market repository.MarketRepository) *marketUsecase {
	return &marketUsecase{market: market}
}

func (mu *marketUsecase) GetStockQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return mu.market.GetStockQuote(ctx, symbol)
}

func (mu *marketUsecase) GetStockHistory(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error) {
	return mu.market.GetStockHistory(ctx, symbol, from, to)
}

func (mu *marketUsecase) GetIndexQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return mu.market.GetIndexQuote(ctx, symbol)
}

func (mu *marketUsecase) ListIndices(ctx context.Context, limit, offset int) ([]entity.IndexListing, error) {
	limit, offset = normalizePage(limit, offset)
	return mu.market.ListIndices(ctx, limit, offset)
}

func (mu *marketUsecase) GetForexRate(ctx context.Context, base, quote string) (*entity.ForexRate, error) {
	return mu.market.GetForexRate(ctx, base, quote)
}

func (mu *marketUsecase) GetCommodityPrice(ctx context.Context, name string) (*entity.CommodityPrice, error) {
	return mu.market.GetCommodityPrice(ctx, name)
}

func (mu *marketUsecase) GetCommodityHistory(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error) {
	return mu.market.GetCommodityHistory(ctx, name, from, to, frequency)
}

func (mu *marketUsecase) GetCompanyProfile(ctx context.Context, ticker string) (*entity.CompanyProfile, error) {
	return mu.market.GetCompanyProfile(ctx, ticker)
}

func (mu *marketUsecase) GetCompanyRatings(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error) {
	return mu.market.GetCompanyRatings(ctx, ticker, from, to, rated)
}

func (mu *marketUsecase) ListBonds(ctx context.Context, limit, offset int) ([]entity.BondInfo, error) {
	limit, offset = normalizePage(limit, offset)
	return mu.market.ListBonds(ctx, limit, offset)
}

func (mu *marketUsecase) GetBondByCountry(ctx context.Context, country string) (*entity.BondInfo, error) {
	return mu.market.GetBondByCountry(ctx, country)
}

func (mu *marketUsecase) ListETFs(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error) {
	limit, offset = normalizePage(limit, offset)
	return mu.market.ListETFs(ctx, limit, offset)
}

func (mu *marketUsecase) GetETFHoldings(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error) {
	return mu.market.GetETFHoldings(ctx, ticker, from, to)
}

// normalizePage fills in the default page when unset. Range violations are
// rejected at the route boundary before reaching here; the clamp is only a
// backstop for programmatic callers.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
