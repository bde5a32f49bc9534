package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	drepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/engine"
	pkgcache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/cache"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
	applogger "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/logger"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/util"
)

// PropertyAnalyzer orchestrates one property valuation: normalize the
// target, fetch comparable candidates, run the engine, record and publish
// the outcome.
type PropertyAnalyzer struct {
	listings    drepo.ListingsProvider
	publisher   drepo.ResultPublisher
	metrics     drepo.Metrics
	cache       pkgcache.Service
	listingsTTL time.Duration
	l           *applogger.Logger
}

func NewPropertyAnalyzer(
	listings drepo.ListingsProvider,
	publisher drepo.ResultPublisher,
	metrics drepo.Metrics,
	cache pkgcache.Service,
	listingsTTL time.Duration,
	l *applogger.Logger,
) *PropertyAnalyzer {
	return &PropertyAnalyzer{
		listings:    listings,
		publisher:   publisher,
		metrics:     metrics,
		cache:       cache,
		listingsTTL: listingsTTL,
		l:           l,
	}
}

func (a *PropertyAnalyzer) Analyze(ctx context.Context, req *models.PropertyAnalyzeRequest) (*models.PropertyResult, error) {
	bathrooms := req.Bathrooms
	if bathrooms == 0 {
		bathrooms = req.Bedrooms
	}

	target := models.PropertyRecord{
		Area:         string(drepo.NormalizeArea(req.Area)),
		PropertyType: string(drepo.NormalizePropertyType(req.PropertyType)),
		Bedrooms:     req.Bedrooms,
		Bathrooms:    bathrooms,
		SizeSqft:     req.SizeSqft,
		PriceAED:     req.AskingAED,
	}

	candidates, err := a.fetchCandidates(ctx, target)
	if err != nil {
		return nil, err
	}

	result, err := engine.EvaluateProperty(target, candidates)
	if err != nil {
		var ice *engine.InsufficientComparablesError
		if errors.As(err, &ice) {
			return nil, xhttp.UnprocessableError("ERR_INSUFFICIENT_COMPARABLES", "insufficient comparable properties found").
				WithParam("found", ice.Found).
				WithParam("required", engine.MinComparables).
				WithParam("suggestion", ice.Suggestion)
		}
		return nil, xhttp.InternalError("property valuation failed").WithError(err)
	}

	a.metrics.RecordAnalysis("property", string(result.Verdict))
	a.publishEvent(ctx, &result)

	a.l.Info("property analysis complete",
		applogger.String("area", target.Area),
		applogger.String("verdict", string(result.Verdict)),
		applogger.String("estimate", util.FormatCurrency(result.Valuation.EstimatedValueAED, "AED")),
		applogger.Int("comparables", result.Valuation.ComparableCount),
	)

	return &result, nil
}

// fetchCandidates queries the listings source for the comparable window,
// with a short-lived cache keyed by the full search window.
func (a *PropertyAnalyzer) fetchCandidates(ctx context.Context, target models.PropertyRecord) ([]models.PropertyRecord, error) {
	query := models.ListingQuery{
		Area:         target.Area,
		PropertyType: target.PropertyType,
		Bedrooms:     target.Bedrooms,
		MinPrice:     target.PriceAED * (1 - engine.ComparableWindowPct),
		MaxPrice:     target.PriceAED * (1 + engine.ComparableWindowPct),
		MinSize:      target.SizeSqft * (1 - engine.ComparableWindowPct),
		MaxSize:      target.SizeSqft * (1 + engine.ComparableWindowPct),
	}

	key := pkgcache.GenerateKeyWithParams("listings",
		query.Area, query.PropertyType, query.Bedrooms,
		int(query.MinPrice), int(query.MaxPrice), int(query.MinSize), int(query.MaxSize))

	var cached []models.PropertyRecord
	if err := a.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, pkgcache.ErrCacheMiss) {
		a.l.Warn("listings cache get error", applogger.String("key", key), applogger.Error(err))
	}

	candidates, err := a.listings.Search(ctx, query)
	if err != nil {
		a.metrics.RecordProviderError("listings")
		return nil, xhttp.UpstreamError("listings data unavailable").WithError(err)
	}

	if err := a.cache.Set(ctx, key, candidates, a.listingsTTL); err != nil {
		a.l.Warn("listings cache set error", applogger.String("key", key), applogger.Error(err))
	}
	return candidates, nil
}

func (a *PropertyAnalyzer) publishEvent(ctx context.Context, res *models.PropertyResult) {
	event := &models.AnalysisEvent{
		AssetClass: "property",
		AssetKey:   fmt.Sprintf("%s:%s:%d", res.Target.Area, res.Target.PropertyType, res.Target.Bedrooms),
		Verdict:    res.Verdict,
		Confidence: string(res.Confidence),
		Reasoning:  res.Reasoning,
		AnalyzedAt: time.Now().UTC(),
	}
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.l.Warn("analysis event publish error", applogger.String("asset", event.AssetKey), applogger.Error(err))
	}
}
