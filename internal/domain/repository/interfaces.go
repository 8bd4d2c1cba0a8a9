package repository

import (
	"context"

	"ExchangeScout/internal/domain/models"
)

// MarketData is the capability set implemented by every upstream provider
// variant. Adapters that have no exchange-listing endpoint of their own
// delegate ListExchanges and SearchExchanges to the static registry.
type MarketData interface {
	Code() string
	Name() string
	ListExchanges(ctx context.Context) ([]models.Exchange, error)
	GetExchange(ctx context.Context, code string) (models.Exchange, error)
	SearchExchanges(ctx context.Context, query string) ([]models.Exchange, error)
	SearchSymbols(ctx context.Context, query models.SearchQuery) ([]models.SymbolResult, error)
}

// ExchangeRegistry is the read-only view of the static exchange table used by
// adapters and the normalizer.
type ExchangeRegistry interface {
	List() []models.Exchange
	Get(code string) (models.Exchange, bool)
	Resolve(code string) (models.Exchange, bool) // code or provider alias
	ResolveSuffix(suffix string) (models.Exchange, bool)
	Search(query string) []models.Exchange
}

// SelectionStore persists the user's selected exchange codes between sessions.
type SelectionStore interface {
	Load() ([]string, error)
	Save(codes []string) error
}

type Metrics interface {
	RecordUpstreamRequest(provider, op, outcome string)
	RecordUpstreamLatency(provider string, seconds float64)
	RecordSearchResults(provider string, count int)
	RecordError(kind string)
}
