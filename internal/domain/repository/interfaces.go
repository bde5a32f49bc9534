package repository

import (
	"context"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
)

// MarketDataProvider supplies market snapshots for cryptocurrencies.
type MarketDataProvider interface {
	Quote(ctx context.Context, assetID string) (*models.AssetQuote, error)
}

// TVLProvider supplies total-value-locked figures for protocols.
// A protocol without TVL data yields (0, nil); absence is not an error.
type TVLProvider interface {
	TVL(ctx context.Context, protocol string) (float64, error)
}

// ListingsProvider supplies raw comparable candidates for a search window.
// Short or empty result sets are returned as-is, never as an error.
type ListingsProvider interface {
	Search(ctx context.Context, q models.ListingQuery) ([]models.PropertyRecord, error)
}

// ResultPublisher emits completed analysis events to an external sink.
type ResultPublisher interface {
	Publish(ctx context.Context, e *models.AnalysisEvent) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordAnalysis(assetClass, verdict string)
	RecordProviderError(provider string)
	RecordLastPrice(asset string, price float64)
	RecordLatency(op string, seconds float64)
}
