package provider

import (
	"context"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/domain/repository"
	xhttp "ExchangeScout/pkg/http"
)

// RegistryExchanges implements the exchange-listing half of the MarketData
// capability set by delegating to the static registry. Embedded by adapters
// whose upstream has no exchange-listing endpoint worth calling.
type RegistryExchanges struct {
	Registry repository.ExchangeRegistry
}

func (r RegistryExchanges) ListExchanges(_ context.Context) ([]models.Exchange, error) {
	return r.Registry.List(), nil
}

func (r RegistryExchanges) GetExchange(_ context.Context, code string) (models.Exchange, error) {
	ex, ok := r.Registry.Get(code)
	if !ok {
		return models.Exchange{}, xhttp.NotFoundErrorf("exchange %s not found", code)
	}
	return ex, nil
}

func (r RegistryExchanges) SearchExchanges(_ context.Context, query string) ([]models.Exchange, error) {
	return r.Registry.Search(query), nil
}
