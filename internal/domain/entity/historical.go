package entity

import "time"

// HistoricalPoint is one OHLCV bar plus its split/dividend-adjusted variants.
type HistoricalPoint struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjOpen  float64
	AdjHigh  float64
	AdjLow   float64
	AdjClose float64
	Volume   int64
}

// HistoricalSeries is a dated price series for one symbol. Points keep the
// order the upstream returned them in; no re-sort is performed.
type HistoricalSeries struct {
	Symbol string
	Points []HistoricalPoint
}
