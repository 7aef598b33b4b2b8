package entity

// BondInfo is a government-bond yield snapshot for one country.
type BondInfo struct {
	Region         string // e.g., "Europe"
	Country        string // e.g., "Germany"
	Type           string // e.g., "10Y"
	Yield          float64
	DayChangePct   float64
	WeekChangePct  float64
	MonthChangePct float64
	YearChangePct  float64
}
