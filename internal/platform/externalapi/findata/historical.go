package findata

import (
	"context"
	"net/url"
	"time"

	"market_backend/internal/domain/entity"
)

// historicalData is the provider payload for daily price history. Bars
// arrive in the caller-requested (ascending) order and are passed through
// without re-sorting.
type historicalData struct {
	Symbol     string `json:"symbol"`
	Historical []struct {
		Date     string  `json:"date"`
		Open     float64 `json:"open"`
		High     float64 `json:"high"`
		Low      float64 `json:"low"`
		Close    float64 `json:"close"`
		AdjOpen  float64 `json:"adjOpen"`
		AdjHigh  float64 `json:"adjHigh"`
		AdjLow   float64 `json:"adjLow"`
		AdjClose float64 `json:"adjClose"`
		Volume   int64   `json:"volume"`
	} `json:"historical"`
}

// GetStockHistory fetches the daily OHLCV series for a symbol between from
// and to (inclusive). Zero times omit the corresponding bound.
func (f *Findata) GetStockHistory(ctx context.Context, symbol string, from, to time.Time) (*entity.HistoricalSeries, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	if !from.IsZero() {
		q.Set("from", from.Format(dateParam))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(dateParam))
	}

	env, err := f.get(ctx, "historical", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Historical prices for %s not found", symbol)
	}

	var body historicalData
	if err := f.decodePayload(env, "historical", &body); err != nil {
		return nil, err
	}

	points := make([]entity.HistoricalPoint, 0, len(body.Historical))
	for _, v := range body.Historical {
		d, err := parseTimestamp(v.Date)
		if err != nil {
			return nil, f.badData("date", "historical", err)
		}
		points = append(points, entity.HistoricalPoint{
			Date:     d,
			Open:     v.Open,
			High:     v.High,
			Low:      v.Low,
			Close:    v.Close,
			AdjOpen:  v.AdjOpen,
			AdjHigh:  v.AdjHigh,
			AdjLow:   v.AdjLow,
			AdjClose: v.AdjClose,
			Volume:   v.Volume,
		})
	}

	symbolOut := body.Symbol
	if symbolOut == "" {
		symbolOut = symbol
	}
	return &entity.HistoricalSeries{Symbol: symbolOut, Points: points}, nil
}
