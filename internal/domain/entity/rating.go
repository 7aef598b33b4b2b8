package entity

import "time"

// RatingBasics identifies the rated company.
type RatingBasics struct {
	Ticker string
	Name   string
}

// RatingConsensus summarizes the analyst consensus for a company.
type RatingConsensus struct {
	Buy             int
	Hold            int
	Sell            int
	TargetHigh      float64
	TargetLow       float64
	TargetMedian    float64
	TargetConsensus float64
}

// AnalystRating is one individual analyst's call.
type AnalystRating struct {
	Analyst     string
	Firm        string
	Rating      string // e.g., "Buy", "Overweight"
	TargetPrice float64
	Date        time.Time
}

// CompanyRatings bundles the consensus summary with the individual entries.
type CompanyRatings struct {
	RatingBasics
	Consensus RatingConsensus
	Analysts  []AnalystRating
}
