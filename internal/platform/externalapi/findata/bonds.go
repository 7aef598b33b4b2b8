package findata

import (
	"context"
	"net/url"
	"strconv"

	"market_backend/internal/domain/entity"
)

type bondResult struct {
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Type           string  `json:"type"`
	Yield          float64 `json:"yield"`
	DayChangePct   float64 `json:"day"`
	WeekChangePct  float64 `json:"week"`
	MonthChangePct float64 `json:"month"`
	YearChangePct  float64 `json:"year"`
}

func (b bondResult) toEntity() entity.BondInfo {
	return entity.BondInfo{
		Region:         b.Region,
		Country:        b.Country,
		Type:           b.Type,
		Yield:          b.Yield,
		DayChangePct:   b.DayChangePct,
		WeekChangePct:  b.WeekChangePct,
		MonthChangePct: b.MonthChangePct,
		YearChangePct:  b.YearChangePct,
	}
}

// ListBonds fetches a page of government-bond snapshots. An empty page is a
// valid result.
func (f *Findata) ListBonds(ctx context.Context, limit, offset int) ([]entity.BondInfo, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	env, err := f.get(ctx, "bond/list", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return []entity.BondInfo{}, nil
	}

	var body []bondResult
	if err := f.decodePayload(env, "bond/list", &body); err != nil {
		return nil, err
	}

	out := make([]entity.BondInfo, 0, len(body))
	for _, v := range body {
		out = append(out, v.toEntity())
	}
	return out, nil
}

// GetBondByCountry fetches the bond snapshot for one country.
func (f *Findata) GetBondByCountry(ctx context.Context, country string) (*entity.BondInfo, error) {
	q := url.Values{}
	q.Set("country", country)

	env, err := f.get(ctx, "bond", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Bond info for %s not found", country)
	}

	var body bondResult
	if err := f.decodePayload(env, "bond", &body); err != nil {
		return nil, err
	}

	info := body.toEntity()
	return &info, nil
}
