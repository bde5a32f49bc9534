package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	drepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/engine"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/coingecko"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/defillama"
	pkgcache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/cache"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
	applogger "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/logger"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/util"
)

// CryptoAnalyzer orchestrates one crypto valuation: resolve the asset id,
// assemble a quote from providers, run the engine, record and publish the
// outcome. The engine itself stays pure; all I/O lives here.
type CryptoAnalyzer struct {
	market    drepo.MarketDataProvider
	tvl       drepo.TVLProvider
	publisher drepo.ResultPublisher
	metrics   drepo.Metrics
	cache     pkgcache.Service
	quoteTTL  time.Duration
	l         *applogger.Logger
}

func NewCryptoAnalyzer(
	market drepo.MarketDataProvider,
	tvl drepo.TVLProvider,
	publisher drepo.ResultPublisher,
	metrics drepo.Metrics,
	cache pkgcache.Service,
	quoteTTL time.Duration,
	l *applogger.Logger,
) *CryptoAnalyzer {
	return &CryptoAnalyzer{
		market:    market,
		tvl:       tvl,
		publisher: publisher,
		metrics:   metrics,
		cache:     cache,
		quoteTTL:  quoteTTL,
		l:         l,
	}
}

func (a *CryptoAnalyzer) Analyze(ctx context.Context, req *models.CryptoAnalyzeRequest) (*models.CryptoResult, error) {
	assetID := coingecko.CoinID(req.Asset)

	quote, err := a.fetchQuote(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if req.NewUnitsPerYear != nil {
		quote.NewUnitsPerYear = req.NewUnitsPerYear
	}
	quote.TotalLockedValue = a.resolveLockedValue(ctx, assetID, quote, req.ValueLockedUSD)

	result := engine.EvaluateCrypto(*quote)

	a.metrics.RecordAnalysis("crypto", string(result.Verdict))
	a.metrics.RecordLastPrice(assetID, quote.UnitPrice)
	a.publishEvent(ctx, assetID, &result)

	fdv := 0.0
	if result.Metrics.FullyDilutedValue != nil {
		fdv = *result.Metrics.FullyDilutedValue
	}
	a.l.Info("crypto analysis complete",
		applogger.String("asset", assetID),
		applogger.String("verdict", string(result.Verdict)),
		applogger.String("fdv", util.FormatCompact(fdv, 2)),
		applogger.String("tvl", util.FormatCompact(quote.TotalLockedValue, 2)),
	)

	return &result, nil
}

// fetchQuote returns a cached market snapshot or fetches a fresh one.
// Whitepaper overrides are applied after the cache so a cached quote never
// carries request-specific figures.
func (a *CryptoAnalyzer) fetchQuote(ctx context.Context, assetID string) (*models.AssetQuote, error) {
	key := pkgcache.GenerateKey("quote", assetID)

	var cached models.AssetQuote
	if err := a.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, pkgcache.ErrCacheMiss) {
		a.l.Warn("quote cache get error", applogger.String("asset", assetID), applogger.Error(err))
	}

	quote, err := a.market.Quote(ctx, assetID)
	if err != nil {
		a.metrics.RecordProviderError("coingecko")
		if errors.Is(err, coingecko.ErrAssetNotFound) {
			return nil, xhttp.NotFoundErrorf("asset '%s' not found", assetID).WithError(err)
		}
		return nil, xhttp.UpstreamError("market data unavailable").WithError(err)
	}

	if err := a.cache.Set(ctx, key, quote, a.quoteTTL); err != nil {
		a.l.Warn("quote cache set error", applogger.String("asset", assetID), applogger.Error(err))
	}
	return quote, nil
}

// resolveLockedValue prefers the caller-supplied figure, then protocol TVL,
// then the market-cap estimate. TVL provider failures degrade to the
// estimate rather than failing the analysis.
func (a *CryptoAnalyzer) resolveLockedValue(ctx context.Context, assetID string, quote *models.AssetQuote, override *float64) float64 {
	if override != nil {
		return *override
	}

	tvl, err := a.tvl.TVL(ctx, assetID)
	if err != nil {
		a.metrics.RecordProviderError("defillama")
		a.l.Warn("tvl fetch error", applogger.String("asset", assetID), applogger.Error(err))
	}
	if tvl > 0 {
		return tvl
	}
	return defillama.EstimateTVL(quote.Name, quote.Symbol, quote.MarketCap)
}

func (a *CryptoAnalyzer) publishEvent(ctx context.Context, assetID string, res *models.CryptoResult) {
	event := &models.AnalysisEvent{
		AssetClass: "crypto",
		AssetKey:   assetID,
		Verdict:    res.Verdict,
		Reasoning:  res.Reasoning,
		AnalyzedAt: time.Now().UTC(),
	}
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.l.Warn("analysis event publish error", applogger.String("asset", assetID), applogger.Error(err))
	}
}
