package findata

import (
	"context"
	"net/url"

	"market_backend/internal/domain/entity"
)

// quoteResult is the provider payload for quote endpoints. The index quote
// endpoint never populates changesPercentage and ships zero.
type quoteResult struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Exchange          string  `json:"exchange"`
	Price             float64 `json:"price"`
	Change            float64 `json:"change"`
	ChangesPercentage float64 `json:"changesPercentage"`
	Volume            int64   `json:"volume"`
	Datetime          string  `json:"datetime"`
}

// GetStockQuote fetches the current quote for an equity symbol.
func (f *Findata) GetStockQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return f.fetchQuote(ctx, "quote", symbol, "Stock quote")
}

// GetIndexQuote fetches the current quote for a market index.
func (f *Findata) GetIndexQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return f.fetchQuote(ctx, "index/quote", symbol, "Index quote")
}

func (f *Findata) fetchQuote(ctx context.Context, endpoint, symbol, kind string) (*entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	env, err := f.get(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("%s for %s not found", kind, symbol)
	}

	var body quoteResult
	if err := f.decodePayload(env, endpoint, &body); err != nil {
		return nil, err
	}

	ts, err := parseTimestamp(body.Datetime)
	if err != nil {
		return nil, f.badData("datetime", endpoint, err)
	}

	return &entity.Quote{
		Symbol:        body.Symbol,
		Name:          body.Name,
		Exchange:      body.Exchange,
		Price:         body.Price,
		Change:        body.Change,
		PercentChange: body.ChangesPercentage,
		Volume:        body.Volume,
		Timestamp:     ts,
	}, nil
}
