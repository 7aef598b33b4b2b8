package dto

import "market_backend/internal/domain/entity"

// HistoricalPointResponse is one bar of a historical series.
type HistoricalPointResponse struct {
	Date     string  `json:"date"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	AdjOpen  float64 `json:"adj_open"`
	AdjHigh  float64 `json:"adj_high"`
	AdjLow   float64 `json:"adj_low"`
	AdjClose float64 `json:"adj_close"`
	Volume   int64   `json:"volume"`
}

// HistoricalSeriesResponse is the wire shape for a price history.
type HistoricalSeriesResponse struct {
	Symbol string                    `json:"symbol"`
	Points []HistoricalPointResponse `json:"points"`
}

// NewHistoricalSeriesResponse converts a canonical series, preserving point
// order.
func NewHistoricalSeriesResponse(s *entity.HistoricalSeries) HistoricalSeriesResponse {
	points := make([]HistoricalPointResponse, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, HistoricalPointResponse{
			Date:     p.Date.UTC().Format(dateLayout),
			Open:     p.Open,
			High:     p.High,
			Low:      p.Low,
			Close:    p.Close,
			AdjOpen:  p.AdjOpen,
			AdjHigh:  p.AdjHigh,
			AdjLow:   p.AdjLow,
			AdjClose: p.AdjClose,
			Volume:   p.Volume,
		})
	}
	return HistoricalSeriesResponse{Symbol: s.Symbol, Points: points}
}
