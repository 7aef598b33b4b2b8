package dto

import "market_backend/internal/domain/entity"

// BondInfoResponse is the wire shape for a bond snapshot.
type BondInfoResponse struct {
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Type           string  `json:"type"`
	Yield          float64 `json:"yield"`
	DayChangePct   float64 `json:"day_change_pct"`
	WeekChangePct  float64 `json:"week_change_pct"`
	MonthChangePct float64 `json:"month_change_pct"`
	YearChangePct  float64 `json:"year_change_pct"`
}

// NewBondInfoResponse converts a canonical bond snapshot.
func NewBondInfoResponse(b *entity.BondInfo) BondInfoResponse {
	return BondInfoResponse{
		Region:         b.Region,
		Country:        b.Country,
		Type:           b.Type,
		Yield:          b.Yield,
		DayChangePct:   b.DayChangePct,
		WeekChangePct:  b.WeekChangePct,
		MonthChangePct: b.MonthChangePct,
		YearChangePct:  b.YearChangePct,
	}
}

// NewBondInfoResponses converts a listing page.
func NewBondInfoResponses(items []entity.BondInfo) []BondInfoResponse {
	out := make([]BondInfoResponse, 0, len(items))
	for i := range items {
		out = append(out, NewBondInfoResponse(&items[i]))
	}
	return out
}
