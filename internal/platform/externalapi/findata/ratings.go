package findata

import (
	"context"
	"net/url"
	"time"

	"market_backend/internal/domain/entity"
)

type ratingsResult struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	Consensus struct {
		Buy             int     `json:"buy"`
		Hold            int     `json:"hold"`
		Sell            int     `json:"sell"`
		TargetHigh      float64 `json:"targetHigh"`
		TargetLow       float64 `json:"targetLow"`
		TargetMedian    float64 `json:"targetMedian"`
		TargetConsensus float64 `json:"targetConsensus"`
	} `json:"consensus"`
	Ratings []struct {
		Analyst     string  `json:"analyst"`
		Firm        string  `json:"firm"`
		Rating      string  `json:"rating"`
		TargetPrice float64 `json:"targetPrice"`
		Date        string  `json:"date"`
	} `json:"ratings"`
}

// GetCompanyRatings fetches the analyst consensus and individual ratings
// for a ticker, optionally windowed by date and filtered by rating value.
func (f *Findata) GetCompanyRatings(ctx context.Context, ticker string, from, to time.Time, rated string) (*entity.CompanyRatings, error) {
	q := url.Values{}
	q.Set("ticker", ticker)
	if !from.IsZero() {
		q.Set("from", from.Format(dateParam))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(dateParam))
	}
	if rated != "" {
		q.Set("rated", rated)
	}

	env, err := f.get(ctx, "company/ratings", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Ratings for %s not found", ticker)
	}

	var body ratingsResult
	if err := f.decodePayload(env, "company/ratings", &body); err != nil {
		return nil, err
	}

	analysts := make([]entity.AnalystRating, 0, len(body.Ratings))
	for _, v := range body.Ratings {
		d, err := parseTimestamp(v.Date)
		if err != nil {
			return nil, f.badData("date", "company/ratings", err)
		}
		analysts = append(analysts, entity.AnalystRating{
			Analyst:     v.Analyst,
			Firm:        v.Firm,
			Rating:      v.Rating,
			TargetPrice: v.TargetPrice,
			Date:        d,
		})
	}

	return &entity.CompanyRatings{
		RatingBasics: entity.RatingBasics{Ticker: body.Ticker, Name: body.Name},
		Consensus: entity.RatingConsensus{
			Buy:             body.Consensus.Buy,
			Hold:            body.Consensus.Hold,
			Sell:            body.Consensus.Sell,
			TargetHigh:      body.Consensus.TargetHigh,
			TargetLow:       body.Consensus.TargetLow,
			TargetMedian:    body.Consensus.TargetMedian,
			TargetConsensus: body.Consensus.TargetConsensus,
		},
		Analysts: analysts,
	}, nil
}
