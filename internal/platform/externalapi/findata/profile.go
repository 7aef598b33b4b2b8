package findata

import (
	"context"
	"net/url"

	"market_backend/internal/domain/entity"
)

// profileData is the provider's flat company record; the mapper rebuilds
// the nested address from its scattered fields.
type profileData struct {
	Symbol            string `json:"symbol"`
	CompanyName       string `json:"companyName"`
	Exchange          string `json:"exchange"`
	ExchangeShortName string `json:"exchangeShortName"`
	Currency          string `json:"currency"`
	Sector            string `json:"sector"`
	Industry          string `json:"industry"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	Zip               string `json:"zip"`
	Country           string `json:"country"`
	CIK               string `json:"cik"`
	ISIN              string `json:"isin"`
	CUSIP             string `json:"cusip"`
	LEI               string `json:"lei"`
	Executives        []struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"executives"`
}

// GetCompanyProfile fetches the denormalized company record for a ticker.
// Identifier fields and the address are absent, not empty, when the
// provider omits them.
func (f *Findata) GetCompanyProfile(ctx context.Context, ticker string) (*entity.CompanyProfile, error) {
	q := url.Values{}
	q.Set("ticker", ticker)

	env, err := f.get(ctx, "company/profile", q)
	if err != nil {
		return nil, err
	}
	if !env.ok {
		return nil, notFound("Company profile for %s not found", ticker)
	}

	var body profileData
	if err := f.decodePayload(env, "company/profile", &body); err != nil {
		return nil, err
	}

	p := &entity.CompanyProfile{
		Symbol:            body.Symbol,
		Name:              body.CompanyName,
		Exchange:          body.Exchange,
		ExchangeShortName: body.ExchangeShortName,
		Currency:          body.Currency,
		Sector:            body.Sector,
		Industry:          body.Industry,
		Executives:        make([]entity.Executive, 0, len(body.Executives)),
		CIK:               optional(body.CIK),
		ISIN:              optional(body.ISIN),
		CUSIP:             optional(body.CUSIP),
		LEI:               optional(body.LEI),
	}

	// Any one populated address field is enough to keep the address.
	if body.Address != "" || body.City != "" || body.State != "" || body.Zip != "" || body.Country != "" {
		p.Address = &entity.Address{
			Street:  body.Address,
			City:    body.City,
			State:   body.State,
			Zip:     body.Zip,
			Country: body.Country,
		}
	}

	for _, e := range body.Executives {
		p.Executives = append(p.Executives, entity.Executive{Name: e.Name, Title: e.Title})
	}

	return p, nil
}

// optional maps the provider's empty-string convention to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
