package entity

// Address is a company's registered address.
type Address struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// Executive is one entry in a company's officer list.
type Executive struct {
	Name  string
	Title string
}

// CompanyProfile is the denormalized company record. Identifier fields and
// the address stay nil when the upstream omits them, never empty strings.
type CompanyProfile struct {
	Symbol            string
	Name              string
	Exchange          string
	ExchangeShortName string
	Currency          string
	Sector            string
	Industry          string
	Address           *Address
	Executives        []Executive
	CIK               *string
	ISIN              *string
	CUSIP             *string
	LEI               *string
}
