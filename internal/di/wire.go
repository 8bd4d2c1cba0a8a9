//go:build wireinject
// +build wireinject

package di

import (
	"ExchangeScout/pkg/config"
	"ExchangeScout/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideRegistry,
		ProvideExchangeRegistry,
		ProvideMetrics,
		ProvideHTTPClient,

		ProvideProviderSet,
		ProvideSearchService,
		ProvideSelectionStore,

		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
