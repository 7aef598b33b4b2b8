package findata

import (
	"context"
	"net/url"

	"market_backend/internal/domain/entity"
)

type forexResult struct {
	Rate float64 `json:"rate"`
	Date string  `json:"date"`
}

// GetForexRate fetches the exchange rate for a currency pair. The pair
// itself is echoed from the request; the provider only returns rate and
// date.
func (f *Findata) GetForexRate(ctx context.Context, base, quote string) (*entity.ForexRate, error) {
	q := url.Values{}
	q.Set("base", base)
	q.Set("quote", quote)

	env, err := f.get(ctx, "forex/rate", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Forex rate for %s/%s not found", base, quote)
	}

	var body forexResult
	if err := f.decodePayload(env, "forex/rate", &body); err != nil {
		return nil, err
	}

	ts, err := parseTimestamp(body.Date)
	if err != nil {
		return nil, f.badData("date", "forex/rate", err)
	}

	return &entity.ForexRate{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Rate:          body.Rate,
		Timestamp:     ts,
	}, nil
}
