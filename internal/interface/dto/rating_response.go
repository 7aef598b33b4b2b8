package dto

import "market_backend/internal/domain/entity"

// RatingConsensusResponse summarizes the analyst consensus.
type RatingConsensusResponse struct {
	Buy             int     `json:"buy"`
	Hold            int     `json:"hold"`
	Sell            int     `json:"sell"`
	TargetHigh      float64 `json:"target_high"`
	TargetLow       float64 `json:"target_low"`
	TargetMedian    float64 `json:"target_median"`
	TargetConsensus float64 `json:"target_consensus"`
}

// AnalystRatingResponse is one analyst entry.
type AnalystRatingResponse struct {
	Analyst     string  `json:"analyst"`
	Firm        string  `json:"firm"`
	Rating      string  `json:"rating"`
	TargetPrice float64 `json:"target_price"`
	Date        string  `json:"date"`
}

// CompanyRatingsResponse is the wire shape for company ratings.
type CompanyRatingsResponse struct {
	Ticker    string                  `json:"ticker"`
	Name      string                  `json:"name"`
	Consensus RatingConsensusResponse `json:"consensus"`
	Analysts  []AnalystRatingResponse `json:"analysts"`
}

// NewCompanyRatingsResponse converts canonical ratings.
func NewCompanyRatingsResponse(r *entity.CompanyRatings) CompanyRatingsResponse {
	analysts := make([]AnalystRatingResponse, 0, len(r.Analysts))
	for _, a := range r.Analysts {
		analysts = append(analysts, AnalystRatingResponse{
			Analyst:     a.Analyst,
			Firm:        a.Firm,
			Rating:      a.Rating,
			TargetPrice: a.TargetPrice,
			Date:        a.Date.UTC().Format(dateLayout),
		})
	}
	return CompanyRatingsResponse{
		Ticker: r.Ticker,
		Name:   r.Name,
		Consensus: RatingConsensusResponse{
			Buy:             r.Consensus.Buy,
			Hold:            r.Consensus.Hold,
			Sell:            r.Consensus.Sell,
			TargetHigh:      r.Consensus.TargetHigh,
			TargetLow:       r.Consensus.TargetLow,
			TargetMedian:    r.Consensus.TargetMedian,
			TargetConsensus: r.Consensus.TargetConsensus,
		},
		Analysts: analysts,
	}
}
