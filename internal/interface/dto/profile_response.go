package dto

import "market_backend/internal/domain/entity"

// AddressResponse is a company's registered address.
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// ExecutiveResponse is one officer entry.
type ExecutiveResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// CompanyProfileResponse is the wire shape for a company profile. Optional
// fields are omitted entirely rather than sent as null or empty strings.
type CompanyProfileResponse struct {
	Symbol            string              `json:"symbol"`
	Name              string              `json:"name"`
	Exchange          string              `json:"exchange"`
	ExchangeShortName string              `json:"exchange_short_name"`
	Currency          string              `json:"currency"`
	Sector            string              `json:"sector"`
	Industry          string              `json:"industry"`
	Address           *AddressResponse    `json:"address,omitempty"`
	Executives        []ExecutiveResponse `json:"executives"`
	CIK               *string             `json:"cik,omitempty"`
	ISIN              *string             `json:"isin,omitempty"`
	CUSIP             *string             `json:"cusip,omitempty"`
	LEI               *string             `json:"lei,omitempty"`
}

// NewCompanyProfileResponse converts a canonical profile.
func NewCompanyProfileResponse(p *entity.CompanyProfile) CompanyProfileResponse {
	out := CompanyProfileResponse{
		Symbol:            p.Symbol,
		Name:              p.Name,
		Exchange:          p.Exchange,
		ExchangeShortName: p.ExchangeShortName,
		Currency:          p.Currency,
		Sector:            p.Sector,
		Industry:          p.Industry,
		Executives:        make([]ExecutiveResponse, 0, len(p.Executives)),
		CIK:               p.CIK,
		ISIN:              p.ISIN,
		CUSIP:             p.CUSIP,
		LEI:               p.LEI,
	}
	if p.Address != nil {
		out.Address = &AddressResponse{
			Street:  p.Address.Street,
			City:    p.Address.City,
			State:   p.Address.State,
			Zip:     p.Address.Zip,
			Country: p.Address.Country,
		}
	}
	for _, e := range p.Executives {
		out.Executives = append(out.Executives, ExecutiveResponse{Name: e.Name, Title: e.Title})
	}
	return out
}
