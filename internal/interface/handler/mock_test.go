package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"market_backend/internal/domain/entity"
)

// mockMarketUsecase implements MarketUsecase with overridable functions.
// A method whose function is left nil fails the call, so a test that expects
// the usecase to be skipped catches an unexpected invocation.
type mockMarketUsecase struct {
	GetStockQuoteFunc       func(ctx context.Context, symbol string) (*entity.Quote, error)
	GetStockHistoryFunc     func(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error)
	GetIndexQuoteFunc       func(ctx context.Context, symbol string) (*entity.Quote, error)
	ListIndicesFunc         func(ctx context.Context, limit, offset int) ([]entity.IndexListing, error)
	GetForexRateFunc        func(ctx context.Context, base, quote string) (*entity.ForexRate, error)
	GetCommodityPriceFunc   func(ctx context.Context, name string) (*entity.CommodityPrice, error)
	GetCommodityHistoryFunc func(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error)
	GetCompanyProfileFunc   func(ctx context.Context, ticker string) (*entity.CompanyProfile, error)
	GetCompanyRatingsFunc   func(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error)
	ListBondsFunc           func(ctx context.Context, limit, offset int) ([]entity.BondInfo, error)
	GetBondByCountryFunc    func(ctx context.Context, country string) (*entity.BondInfo, error)
	ListETFsFunc            func(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error)
	GetETFHoldingsFunc      func(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error)
}

var errUnexpectedCall = errors.New("unexpected usecase call")

func (m *mockMarketUsecase) GetStockQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	if m.GetStockQuoteFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetStockQuoteFunc(ctx, symbol)
}

func (m *mockMarketUsecase) GetStockHistory(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error) {
	if m.GetStockHistoryFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetStockHistoryFunc(ctx, symbol, from, to)
}

func (m *mockMarketUsecase) GetIndexQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	if m.GetIndexQuoteFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetIndexQuoteFunc(ctx, symbol)
}

func (m *mockMarketUsecase) ListIndices(ctx context.Context, limit, offset int) ([]entity.IndexListing, error) {
	if m.ListIndicesFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListIndicesFunc(ctx, limit, offset)
}

func (m *mockMarketUsecase) GetForexRate(ctx context.Context, base, quote string) (*entity.ForexRate, error) {
	if m.GetForexRateFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetForexRateFunc(ctx, base, quote)
}

func (m *mockMarketUsecase) GetCommodityPrice(ctx context.Context, name string) (*entity.CommodityPrice, error) {
	if m.GetCommodityPriceFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetCommodityPriceFunc(ctx, name)
}

func (m *mockMarketUsecase) GetCommodityHistory(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error) {
	if m.GetCommodityHistoryFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetCommodityHistoryFunc(ctx, name, from, to, frequency)
}

func (m *mockMarketUsecase) GetCompanyProfile(ctx context.Context, ticker string) (*entity.CompanyProfile, error) {
	if m.GetCompanyProfileFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetCompanyProfileFunc(ctx, ticker)
}

func (m *mockMarketUsecase) GetCompanyRatings(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error) {
	if m.GetCompanyRatingsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetCompanyRatingsFunc(ctx, ticker, from, to, rated)
}

func (m *mockMarketUsecase) ListBonds(ctx context.Context, limit, offset int) ([]entity.BondInfo, error) {
	if m.ListBondsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListBondsFunc(ctx, limit, offset)
}

func (m *mockMarketUsecase) GetBondByCountry(ctx context.Context, country string) (*entity.BondInfo, error) {
	if m.GetBondByCountryFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetBondByCountryFunc(ctx, country)
}

func (m *mockMarketUsecase) ListETFs(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error) {
	if m.ListETFsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.ListETFsFunc(ctx, limit, offset)
}

func (m *mockMarketUsecase) GetETFHoldings(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error) {
	if m.GetETFHoldingsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.GetETFHoldingsFunc(ctx, ticker, from, to)
}

// performRequest routes a GET through a fresh engine and records the result.
func performRequest(register func(*gin.Engine), target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
