package findata

import (
	"context"
	"net/url"
	"time"

	"market_backend/internal/domain/entity"
)

// commodityResult carries the provider's quarter-pinned reference fields.
// The field names encode year and quarter (quarter1_25 is 2025 Q1); the
// mapper flattens them into the generic (period, value) list the canonical
// schema uses.
type commodityResult struct {
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	Price          float64 `json:"price"`
	DayChangePct   float64 `json:"day"`
	WeekChangePct  float64 `json:"week"`
	MonthChangePct float64 `json:"month"`
	YTDChangePct   float64 `json:"ytd"`
	Quarter125     float64 `json:"quarter1_25"`
	Quarter424     float64 `json:"quarter4_24"`
	Quarter324     float64 `json:"quarter3_24"`
	Quarter224     float64 `json:"quarter2_24"`
	Quarter124     float64 `json:"quarter1_24"`
	Quarter423     float64 `json:"quarter4_23"`
}

type commodityHistoryResult struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Prices []struct {
		Date  string  `json:"date"`
		Price float64 `json:"price"`
	} `json:"prices"`
}

// GetCommodityPrice fetches the current snapshot for a named commodity.
func (f *Findata) GetCommodityPrice(ctx context.Context, name string) (*entity.CommodityPrice, error) {
	q := url.Values{}
	q.Set("name", name)

	env, err := f.get(ctx, "commodity", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Commodity %s not found", name)
	}

	var body commodityResult
	if err := f.decodePayload(env, "commodity", &body); err != nil {
		return nil, err
	}

	return &entity.CommodityPrice{
		CommodityBasics: entity.CommodityBasics{Name: body.Name, Unit: body.Unit},
		Price:           body.Price,
		DayChangePct:    body.DayChangePct,
		WeekChangePct:   body.WeekChangePct,
		MonthChangePct:  body.MonthChangePct,
		YTDChangePct:    body.YTDChangePct,
		Quarters: []entity.QuarterValue{
			{Period: "2025Q1", Value: body.Quarter125},
			{Period: "2024Q4", Value: body.Quarter424},
			{Period: "2024Q3", Value: body.Quarter324},
			{Period: "2024Q2", Value: body.Quarter224},
			{Period: "2024Q1", Value: body.Quarter124},
			{Period: "2023Q4", Value: body.Quarter423},
		},
	}, nil
}

// GetCommodityHistory fetches the dated price series for a commodity at the
// given frequency ("daily", "weekly", "monthly").
func (f *Findata) GetCommodityHistory(ctx context.Context, name string, from, to time.Time, frequency string) (*entity.CommodityHistory, error) {
	q := url.Values{}
	q.Set("name", name)
	if !from.IsZero() {
		q.Set("from", from.Format(dateParam))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(dateParam))
	}
	if frequency != "" {
		q.Set("frequency", frequency)
	}

	env, err := f.get(ctx, "commodity/history", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Commodity history for %s not found", name)
	}

	var body commodityHistoryResult
	if err := f.decodePayload(env, "commodity/history", &body); err != nil {
		return nil, err
	}

	points := make([]entity.CommodityPoint, 0, len(body.Prices))
	for _, v := range body.Prices {
		d, err := parseTimestamp(v.Date)
		if err != nil {
			return nil, f.badData("date", "commodity/history", err)
		}
		points = append(points, entity.CommodityPoint{Date: d, Price: v.Price})
	}

	return &entity.CommodityHistory{
		CommodityBasics: entity.CommodityBasics{Name: body.Name, Unit: body.Unit},
		Points:          points,
	}, nil
}
