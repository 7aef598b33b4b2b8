package entity

// ETFBasics identifies an exchange-traded fund.
type ETFBasics struct {
	Ticker   string
	Name     string
	Exchange string
}

// ETFAttributes are the aggregate fund figures.
type ETFAttributes struct {
	AUM               float64 // Assets under management
	ExpenseRatio      float64
	SharesOutstanding int64
	NAV               float64
}

// SectorWeight is one entry in an ETF's sector breakdown.
type SectorWeight struct {
	Sector string
	Weight float64 // percentage of portfolio
}

// ETFHolding is one position held by an ETF.
type ETFHolding struct {
	Ticker      string
	Name        string
	Weight      float64
	Shares      int64
	MarketValue float64
}

// ETFHoldingDetails bundles fund attributes with the sector breakdown and
// the itemized holdings list.
type ETFHoldingDetails struct {
	ETFBasics
	Attributes ETFAttributes
	Sectors    []SectorWeight
	Holdings   []ETFHolding
}
