package findata

import (
	"context"
	"net/url"
	"strconv"

	"market_backend/internal/domain/entity"
)

type indexListingItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// ListIndices fetches a page of the supported-indices catalog. An empty
// page is a valid result, never a not-found.
func (f *Findata) ListIndices(ctx context.Context, limit, offset int) ([]entity.IndexListing, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	env, err := f.get(ctx, "index/list", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return []entity.IndexListing{}, nil
	}

	var body []indexListingItem
	if err := f.decodePayload(env, "index/list", &body); err != nil {
		return nil, err
	}

	out := make([]entity.IndexListing, 0, len(body))
	for _, v := range body {
		out = append(out, entity.IndexListing{
			Symbol:   v.Symbol,
			Name:     v.Name,
			Exchange: v.Exchange,
			Currency: v.Currency,
		})
	}
	return out, nil
}
