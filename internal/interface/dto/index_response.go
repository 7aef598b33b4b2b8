package dto

import "market_backend/internal/domain/entity"

// IndexListingResponse is one row of the indices catalog.
type IndexListingResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// NewIndexListingResponses converts a listing page. An empty page
// serializes as [], not null.
func NewIndexListingResponses(items []entity.IndexListing) []IndexListingResponse {
	out := make([]IndexListingResponse, 0, len(items))
	for _, v := range items {
		out = append(out, IndexListingResponse{
			Symbol:   v.Symbol,
			Name:     v.Name,
			Exchange: v.Exchange,
			Currency: v.Currency,
		})
	}
	return out
}
