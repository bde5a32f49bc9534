//go:build wireinject
// +build wireinject

package di

import (
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/config"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideDataCache,
		ProvideResponseCache,

		// Repositories
		ProvideListings,
		ProvidePublisher,

		// Use cases
		ProvideCryptoAnalyzer,
		ProvidePropertyAnalyzer,

		// HTTP handler and application server
		ProvideValuationsHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
