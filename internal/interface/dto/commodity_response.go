package dto

import "market_backend/internal/domain/entity"

// QuarterValueResponse is one quarterly reference value.
type QuarterValueResponse struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// CommodityPriceResponse is the wire shape for a commodity snapshot.
type CommodityPriceResponse struct {
	Name           string                 `json:"name"`
	Unit           string                 `json:"unit"`
	Price          float64                `json:"price"`
	DayChangePct   float64                `json:"day_change_pct"`
	WeekChangePct  float64                `json:"week_change_pct"`
	MonthChangePct float64                `json:"month_change_pct"`
	YTDChangePct   float64                `json:"ytd_change_pct"`
	Quarters       []QuarterValueResponse `json:"quarters"`
}

// NewCommodityPriceResponse converts a canonical commodity snapshot.
func NewCommodityPriceResponse(c *entity.CommodityPrice) CommodityPriceResponse {
	quarters := make([]QuarterValueResponse, 0, len(c.Quarters))
	for _, q := range c.Quarters {
		quarters = append(quarters, QuarterValueResponse{Period: q.Period, Value: q.Value})
	}
	return CommodityPriceResponse{
		Name:           c.Name,
		Unit:           c.Unit,
		Price:          c.Price,
		DayChangePct:   c.DayChangePct,
		WeekChangePct:  c.WeekChangePct,
		MonthChangePct: c.MonthChangePct,
		YTDChangePct:   c.YTDChangePct,
		Quarters:       quarters,
	}
}

// CommodityPointResponse is one dated price in a commodity history.
type CommodityPointResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// CommodityHistoryResponse is the wire shape for a commodity price series.
type CommodityHistoryResponse struct {
	Name   string                   `json:"name"`
	Unit   string                   `json:"unit"`
	Points []CommodityPointResponse `json:"points"`
}

// NewCommodityHistoryResponse converts a canonical commodity history.
func NewCommodityHistoryResponse(h *entity.CommodityHistory) CommodityHistoryResponse {
	points := make([]CommodityPointResponse, 0, len(h.Points))
	for _, p := range h.Points {
		points = append(points, CommodityPointResponse{
			Date:  p.Date.UTC().Format(dateLayout),
			Price: p.Price,
		})
	}
	return CommodityHistoryResponse{Name: h.Name, Unit: h.Unit, Points: points}
}
