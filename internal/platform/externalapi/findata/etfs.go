package findata

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"market_backend/internal/domain/entity"
)

type etfListItem struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

type etfHoldingsResult struct {
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	Exchange          string  `json:"exchange"`
	AUM               float64 `json:"aum"`
	ExpenseRatio      float64 `json:"expenseRatio"`
	SharesOutstanding int64   `json:"sharesOutstanding"`
	NAV               float64 `json:"nav"`
	Sectors           []struct {
		Sector string  `json:"sector"`
		Weight float64 `json:"weight"`
	} `json:"sectors"`
	Holdings []struct {
		Ticker      string  `json:"ticker"`
		Name        string  `json:"name"`
		Weight      float64 `json:"weight"`
		Shares      int64   `json:"shares"`
		MarketValue float64 `json:"marketValue"`
	} `json:"holdings"`
}

// ListETFs fetches a page of the supported-ETF catalog. An empty page is a
// valid result.
func (f *Findata) ListETFs(ctx context.Context, limit, offset int) ([]entity.ETFBasics, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	env, err := f.get(ctx, "etf/list", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return []entity.ETFBasics{}, nil
	}

	var body []etfListItem
	if err := f.decodePayload(env, "etf/list", &body); err != nil {
		return nil, err
	}

	out := make([]entity.ETFBasics, 0, len(body))
	for _, v := range body {
		out = append(out, entity.ETFBasics{Ticker: v.Ticker, Name: v.Name, Exchange: v.Exchange})
	}
	return out, nil
}

// GetETFHoldings fetches fund attributes, sector weights, and the itemized
// holdings list for an ETF. Absent sections map to empty lists.
func (f *Findata) GetETFHoldings(ctx context.Context, ticker string, from, to time.Time) (*entity.ETFHoldingDetails, error) {
	q := url.Values{}
	q.Set("ticker", ticker)
	if !from.IsZero() {
		q.Set("from", from.Format(dateParam))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(dateParam))
	}

	env, err := f.get(ctx, "etf/holdings", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("ETF holdings for %s not found", ticker)
	}

	var body etfHoldingsResult
	if err := f.decodePayload(env, "etf/holdings", &body); err != nil {
		return nil, err
	}

	details := &entity.ETFHoldingDetails{
		ETFBasics: entity.ETFBasics{Ticker: body.Ticker, Name: body.Name, Exchange: body.Exchange},
		Attributes: entity.ETFAttributes{
			AUM:               body.AUM,
			ExpenseRatio:      body.ExpenseRatio,
			SharesOutstanding: body.SharesOutstanding,
			NAV:               body.NAV,
		},
		Sectors:  make([]entity.SectorWeight, 0, len(body.Sectors)),
		Holdings: make([]entity.ETFHolding, 0, len(body.Holdings)),
	}

	for _, s := range body.Sectors {
		details.Sectors = append(details.Sectors, entity.SectorWeight{Sector: s.Sector, Weight: s.Weight})
	}
	for _, h := range body.Holdings {
		details.Holdings = append(details.Holdings, entity.ETFHolding{
			Ticker:      h.Ticker,
			Name:        h.Name,
			Weight:      h.Weight,
			Shares:      h.Shares,
			MarketValue: h.MarketValue,
		})
	}

	return details, nil
}
