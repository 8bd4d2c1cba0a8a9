package models

// Requests for the exchange HTTP endpoints. Defined in domain for consistency and reuse.

type SymbolSearchRequest struct {
	Query    string `query:"query" json:"query" validate:"required,min=1,max=64"`
	Exchange string `query:"exchange" json:"exchange" validate:"omitempty,max=16"`
	Type     string `query:"type" json:"type" default:"symbol" validate:"oneof=symbol company"`
	Provider string `query:"provider" json:"provider" validate:"omitempty,max=32"`
	Limit    int    `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=200"`
}

type ExchangeSearchRequest struct {
	Q        string `query:"q" json:"q" validate:"required,min=1,max=64"`
	Provider string `query:"provider" json:"provider" validate:"omitempty,max=32"`
}

type SelectedExchangesRequest struct {
	Exchanges []string `json:"exchanges" validate:"required,dive,required,max=16"`
}
