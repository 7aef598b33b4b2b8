package entity

import "time"

// CommodityBasics identifies a commodity and its quoted unit.
type CommodityBasics struct {
	Name string // e.g., "gold"
	Unit string // e.g., "USD/t oz"
}

// QuarterValue is one quarterly reference value, labeled like "2025Q1".
type QuarterValue struct {
	Period string
	Value  float64
}

// CommodityPrice is a spot snapshot with rolling percent-change windows and
// recent quarterly reference values.
type CommodityPrice struct {
	CommodityBasics
	Price          float64
	DayChangePct   float64
	WeekChangePct  float64
	MonthChangePct float64
	YTDChangePct   float64
	Quarters       []QuarterValue
}

// CommodityPoint is one dated price in a commodity history.
type CommodityPoint struct {
	Date  time.Time
	Price float64
}

// CommodityHistory pairs a commodity with its dated price series.
type CommodityHistory struct {
	CommodityBasics
	Points []CommodityPoint
}
