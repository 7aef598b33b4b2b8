package entity

// IndexListing is one row of the supported-indices catalog.
type IndexListing struct {
	Symbol   string
	Name     string
	Exchange string
	Currency string
}
