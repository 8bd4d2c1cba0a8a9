package di

import (
	"fmt"

	domrepo "ExchangeScout/internal/domain/repository"
	"ExchangeScout/internal/handler/api"
	"ExchangeScout/internal/registry"
	internalrepo "ExchangeScout/internal/repository"
	"ExchangeScout/internal/service/finnhub"
	"ExchangeScout/internal/service/marketstack"
	"ExchangeScout/internal/service/provider"
	"ExchangeScout/internal/service/yahoo"
	"ExchangeScout/internal/usecase"
	"ExchangeScout/pkg/config"
	xhttp "ExchangeScout/pkg/http"
	applogger "ExchangeScout/pkg/logger"
	"ExchangeScout/pkg/metrics"
	"ExchangeScout/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideRegistry loads the static exchange table.
func ProvideRegistry() (*registry.Registry, error) {
	r, err := registry.New()
	if err != nil {
		return nil, fmt.Errorf("exchange registry: %w", err)
	}
	return r, nil
}

// ProvideExchangeRegistry exposes the registry through its domain interface.
func ProvideExchangeRegistry(r *registry.Registry) domrepo.ExchangeRegistry {
	return r
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the shared outbound HTTP client with the
// configured upstream timeout.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Providers.Timeout))
}

// ProvideProviderSet builds the fixed provider registry.
func ProvideProviderSet(
	cfg *config.Config,
	reg domrepo.ExchangeRegistry,
	httpc *xhttp.Client,
	m domrepo.Metrics,
	l *applogger.Logger,
) (*provider.Set, error) {
	set, err := provider.NewSet(cfg.Providers.Default,
		yahoo.New(yahoo.Config{
			BaseURL:   cfg.Providers.Yahoo.BaseURL,
			UserAgent: cfg.Providers.Yahoo.UserAgent,
		}, reg, httpc, m, l),
		finnhub.New(finnhub.Config{
			APIKey:  cfg.Providers.Finnhub.APIKey,
			BaseURL: cfg.Providers.Finnhub.BaseURL,
		}, reg, httpc, m, l),
		marketstack.New(marketstack.Config{
			APIKey:  cfg.Providers.Marketstack.APIKey,
			BaseURL: cfg.Providers.Marketstack.BaseURL,
		}, reg, httpc, m, l),
	)
	if err != nil {
		return nil, fmt.Errorf("provider set: %w", err)
	}
	return set, nil
}

// ProvideSearchService creates the search use case.
func ProvideSearchService(
	cfg *config.Config,
	set *provider.Set,
	reg domrepo.ExchangeRegistry,
	m domrepo.Metrics,
	l *applogger.Logger,
) *usecase.SearchService {
	return usecase.NewSearchService(set, reg, m, l, cfg.Providers.Timeout)
}

// ProvideSelectionStore creates the selected-exchanges store.
func ProvideSelectionStore(cfg *config.Config) domrepo.SelectionStore {
	return internalrepo.NewFileSelectionStore(cfg.Selection.Path)
}

// ProvideHandler creates the HTTP route handler.
func ProvideHandler(
	l *applogger.Logger,
	search *usecase.SearchService,
	reg domrepo.ExchangeRegistry,
	store domrepo.SelectionStore,
) xhttp.Handler {
	return api.NewExchangeHandler(l, search, reg, store)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
