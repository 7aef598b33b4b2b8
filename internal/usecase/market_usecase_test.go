package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"market_backend/internal/domain/entity"
)

// mockMarketRepository lets each test override only the call it exercises.
type mockMarketRepository struct {
	getStockQuoteFn       func(ctx context.Context, symbol string) (*entity.Quote, error)
	getStockHistoryFn     func(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error)
	getIndexQuoteFn       func(ctx context.Context, symbol string) (*entity.Quote, error)
	listIndicesFn         func(ctx context.Context, limit, offset int) ([]entity.IndexListing, error)
	getForexRateFn        func(ctx context.Context, base, quote string) (*entity.ForexRate, error)
	getCommodityPriceFn   func(ctx context.Context, name string) (*entity.CommodityPrice, error)
	getCommodityHistoryFn func(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error)
	getCompanyProfileFn   func(ctx context.Context, ticker string) (*entity.CompanyProfile, error)
	getCompanyRatingsFn   func(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error)
	listBondsFn           func(ctx context.Context, limit, offset int) ([]entity.BondInfo, error)
	getBondByCountryFn    func(ctx context.Context, country string) (*entity.BondInfo, error)
	listETFsFn            func(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error)
	getETFHoldingsFn      func(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error)
}

func (m *mockMarketRepository) GetStockQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return m.getStockQuoteFn(ctx, symbol)
}

func (m *mockMarketRepository) GetStockHistory(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error) {
	return m.getStockHistoryFn(ctx, symbol, from, to)
}

func (m *mockMarketRepository) GetIndexQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return m.getIndexQuoteFn(ctx, symbol)
}

func (m *mockMarketRepository) ListIndices(ctx context.Context, limit, offset int) ([]entity.IndexListing, error) {
	return m.listIndicesFn(ctx, limit, offset)
}

func (m *mockMarketRepository) GetForexRate(ctx context.Context, base, quote string) (*entity.ForexRate, error) {
	return m.getForexRateFn(ctx, base, quote)
}

func (m *mockMarketRepository) GetCommodityPrice(ctx context.Context, name string) (*entity.CommodityPrice, error) {
	return m.getCommodityPriceFn(ctx, name)
}

func (m *mockMarketRepository) GetCommodityHistory(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error) {
	return m.getCommodityHistoryFn(ctx, name, from, to, frequency)
}

func (m *mockMarketRepository) GetCompanyProfile(ctx context.Context, ticker string) (*entity.CompanyProfile, error) {
	return m.getCompanyProfileFn(ctx, ticker)
}

func (m *mockMarketRepository) GetCompanyRatings(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error) {
	return m.getCompanyRatingsFn(ctx, ticker, from, to, rated)
}

func (m *mockMarketRepository) ListBonds(ctx context.Context, limit, offset int) ([]entity.BondInfo, error) {
	return m.listBondsFn(ctx, limit, offset)
}

func (m *mockMarketRepository) GetBondByCountry(ctx context.Context, country string) (*entity.BondInfo, error) {
	return m.getBondByCountryFn(ctx, country)
}

func (m *mockMarketRepository) ListETFs(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error) {
	return m.listETFsFn(ctx, limit, offset)
}

func (m *mockMarketRepository) GetETFHoldings(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error) {
	return m.getETFHoldingsFn(ctx, ticker, from, to)
}

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"unset", 0, 0, DefaultLimit, 0},
		{"explicit", 250, 50, 250, 50},
		{"over max", 5000, 0, MaxLimit, 0},
		{"negative", -1, -10, DefaultLimit, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limit, offset := normalizePage(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.limit, tt.offset, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestMarketUsecase_ListBonds_AppliesDefaultPage(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset int
	repo := &mockMarketRepository{
		listBondsFn: func(ctx context.Context, limit, offset int) ([]entity.BondInfo, error) {
			gotLimit, gotOffset = limit, offset
			return []entity.BondInfo{}, nil
		},
	}

	mu := NewMarketUsecase(repo)
	if _, err := mu.ListBonds(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != DefaultLimit || gotOffset != 0 {
		t.Errorf("expected page (%d, 0), got (%d, %d)", DefaultLimit, gotLimit, gotOffset)
	}
}

func TestMarketUsecase_ListETFs_ForwardsExplicitPage(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset int
	repo := &mockMarketRepository{
		listETFsFn: func(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error) {
			gotLimit, gotOffset = limit, offset
			return []entity.ETFBasics{}, nil
		},
	}

	mu := NewMarketUsecase(repo)
	if _, err := mu.ListETFs(context.Background(), 250, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 250 || gotOffset != 50 {
		t.Errorf("expected page (250, 50), got (%d, %d)", gotLimit, gotOffset)
	}
}

func TestMarketUsecase_GetForexRate_Delegates(t *testing.T) {
	t.Parallel()

	want := &entity.ForexRate{BaseCurrency: "USD", QuoteCurrency: "EUR", Rate: 0.92}
	repo := &mockMarketRepository{
		getForexRateFn: func(ctx context.Context, base, quote string) (*entity.ForexRate, error) {
			if base != "USD" || quote != "EUR" {
				t.Errorf("unexpected pair %s/%s", base, quote)
			}
			return want, nil
		},
	}

	mu := NewMarketUsecase(repo)
	got, err := mu.GetForexRate(context.Background(), "USD", "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected the provider's rate to pass through unchanged")
	}
}

func TestMarketUsecase_GetStockQuote_PropagatesError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("provider down")
	repo := &mockMarketRepository{
		getStockQuoteFn: func(ctx context.Context, symbol string) (*entity.Quote, error) {
			return nil, wantErr
		},
	}

	mu := NewMarketUsecase(repo)
	_, err := mu.GetStockQuote(context.Background(), "AAPL")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected the provider error unchanged, got %v", err)
	}
}
