package dto

import "market_backend/internal/domain/entity"

// ETFListingResponse is one row of the ETF catalog.
type ETFListingResponse struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// NewETFListingResponses converts a listing page.
func NewETFListingResponses(items []entity.ETFBasics) []ETFListingResponse {
	out := make([]ETFListingResponse, 0, len(items))
	for _, v := range items {
		out = append(out, ETFListingResponse{Ticker: v.Ticker, Name: v.Name, Exchange: v.Exchange})
	}
	return out
}

// SectorWeightResponse is one sector-breakdown entry.
type SectorWeightResponse struct {
	Sector string  `json:"sector"`
	Weight float64 `json:"weight"`
}

// ETFHoldingResponse is one position held by an ETF.
type ETFHoldingResponse struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Shares      int64   `json:"shares"`
	MarketValue float64 `json:"market_value"`
}

// ETFHoldingDetailsResponse is the wire shape for ETF holding details.
type ETFHoldingDetailsResponse struct {
	Ticker            string                 `json:"ticker"`
	Name              string                 `json:"name"`
	Exchange          string                 `json:"exchange"`
	AUM               float64                `json:"aum"`
	ExpenseRatio      float64                `json:"expense_ratio"`
	SharesOutstanding int64                  `json:"shares_outstanding"`
	NAV               float64                `json:"nav"`
	Sectors           []SectorWeightResponse `json:"sectors"`
	Holdings          []ETFHoldingResponse   `json:"holdings"`
}

// NewETFHoldingDetailsResponse converts canonical ETF holding details.
func NewETFHoldingDetailsResponse(d *entity.ETFHoldingDetails) ETFHoldingDetailsResponse {
	sectors := make([]SectorWeightResponse, 0, len(d.Sectors))
	for _, s := range d.Sectors {
		sectors = append(sectors, SectorWeightResponse{Sector: s.Sector, Weight: s.Weight})
	}
	holdings := make([]ETFHoldingResponse, 0, len(d.Holdings))
	for _, h := range d.Holdings {
		holdings = append(holdings, ETFHoldingResponse{
			Ticker:      h.Ticker,
			Name:        h.Name,
			Weight:      h.Weight,
			Shares:      h.Shares,
			MarketValue: h.MarketValue,
		})
	}
	return ETFHoldingDetailsResponse{
		Ticker:            d.Ticker,
		Name:              d.Name,
		Exchange:          d.Exchange,
		AUM:               d.Attributes.AUM,
		ExpenseRatio:      d.Attributes.ExpenseRatio,
		SharesOutstanding: d.Attributes.SharesOutstanding,
		NAV:               d.Attributes.NAV,
		Sectors:           sectors,
		Holdings:          holdings,
	}
}
