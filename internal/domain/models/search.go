package models

// SearchType selects which field of a symbol search the query text is matched
// against.
type SearchType string

const (
	SearchTypeSymbol  SearchType = "symbol"
	SearchTypeCompany SearchType = "company"
)

// Valid reports whether t is a known search type.
func (t SearchType) Valid() bool {
	return t == SearchTypeSymbol || t == SearchTypeCompany
}

// Match kinds assigned by the normalizer, strongest first.
const (
	MatchExact     = "exact"
	MatchPrefix    = "prefix"
	MatchSubstring = "substring"
)

// SearchQuery is a normalized symbol search request. Built per HTTP request
// and discarded afterwards.
type SearchQuery struct {
	Text           string
	ExchangeFilter string
	Type           SearchType
	Provider       string
	Limit          int
}

// SymbolResult is a single matched ticker as presented to the frontend.
// Exchange holds a canonical registry code, or the raw upstream identifier
// when the registry cannot resolve it.
type SymbolResult struct {
	Symbol          string `json:"symbol"`
	DisplaySymbol   string `json:"displaySymbol"`
	Description     string `json:"description"`
	Exchange        string `json:"exchange"`
	Type            string `json:"type"`
	MatchKind       string `json:"matchKind"`
	ExchangeUnknown bool   `json:"exchangeUnknown,omitempty"`
}
