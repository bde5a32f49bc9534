package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	pkgcache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/cache"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
)

type fakeListings struct {
	records []models.PropertyRecord
	err     error
	queries []models.ListingQuery
}

func (f *fakeListings) Search(_ context.Context, q models.ListingQuery) ([]models.PropertyRecord, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func marinaComparables() []models.PropertyRecord {
	ppsf := func(size, pricePerSqft float64) models.PropertyRecord {
		return models.PropertyRecord{
			Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 2, Bathrooms: 2,
			SizeSqft: size, PriceAED: size * pricePerSqft,
		}
	}
	return []models.PropertyRecord{
		ppsf(1000, 1500), ppsf(1100, 1500), ppsf(1200, 1500), ppsf(1300, 1500),
	}
}

func marinaRequest() *models.PropertyAnalyzeRequest {
	return &models.PropertyAnalyzeRequest{
		Area:         "Dubai Marina",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    2,
		SizeSqft:     1200,
		AskingAED:    1_800_000,
	}
}

func newPropertyAnalyzer(listings *fakeListings, pub *fakePublisher, m *fakeMetrics, t *testing.T) *PropertyAnalyzer {
	return NewPropertyAnalyzer(listings, pub, m, pkgcache.NewMemoryCache(), time.Minute, testLogger(t))
}

func TestPropertyAnalyze(t *testing.T) {
	listings := &fakeListings{records: marinaComparables()}
	pub := &fakePublisher{}
	m := newFakeMetrics()
	a := newPropertyAnalyzer(listings, pub, m, t)

	res, err := a.Analyze(context.Background(), marinaRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Target.Area != "dubai-marina" {
		t.Fatalf("area = %q, want normalized slug", res.Target.Area)
	}
	if res.Valuation.EstimatedValueAED != 1_800_000 {
		t.Fatalf("estimated value = %v, want 1800000", res.Valuation.EstimatedValueAED)
	}
	if res.PriceSignal != models.SignalPriceNeutral {
		t.Fatalf("price signal = %v, want neutral", res.PriceSignal)
	}

	// Search window must be the comparable window around the target.
	q := listings.queries[0]
	if q.MinPrice != 1_440_000 || q.MaxPrice != 2_160_000 {
		t.Fatalf("price window = [%v, %v], want [1440000, 2160000]", q.MinPrice, q.MaxPrice)
	}

	if len(pub.events) != 1 || pub.events[0].AssetKey != "dubai-marina:apartment:2" {
		t.Fatalf("published events = %+v", pub.events)
	}
	if m.analyses["property:"+string(res.Verdict)] != 1 {
		t.Fatalf("analysis metric not recorded: %v", m.analyses)
	}
}

func TestPropertyAnalyzeInsufficientComparables(t *testing.T) {
	listings := &fakeListings{records: marinaComparables()[:2]}
	pub := &fakePublisher{}
	a := newPropertyAnalyzer(listings, pub, newFakeMetrics(), t)

	_, err := a.Analyze(context.Background(), marinaRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 422 {
		t.Fatalf("error = %v, want 422 AppError", err)
	}
	if appErr.Params["found"] != 2 {
		t.Fatalf("params = %v, want found=2", appErr.Params)
	}
	if appErr.Params["suggestion"] == "" {
		t.Fatalf("params = %v, want a suggestion", appErr.Params)
	}
	if len(pub.events) != 0 {
		t.Fatalf("no event should be published on error, got %+v", pub.events)
	}
}

func TestPropertyAnalyzeListingsFailure(t *testing.T) {
	listings := &fakeListings{err: errors.New("upstream down")}
	m := newFakeMetrics()
	a := newPropertyAnalyzer(listings, &fakePublisher{}, m, t)

	_, err := a.Analyze(context.Background(), marinaRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 502 {
		t.Fatalf("error = %v, want 502 AppError", err)
	}
	if m.providerErrors["listings"] != 1 {
		t.Fatalf("provider error metric not recorded: %v", m.providerErrors)
	}
}

func TestPropertyAnalyzeCachesListings(t *testing.T) {
	listings := &fakeListings{records: marinaComparables()}
	a := newPropertyAnalyzer(listings, &fakePublisher{}, newFakeMetrics(), t)

	if _, err := a.Analyze(context.Background(), marinaRequest()); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := a.Analyze(context.Background(), marinaRequest()); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if len(listings.queries) != 1 {
		t.Fatalf("provider queries = %d, want 1 (second served from cache)", len(listings.queries))
	}
}

func TestPropertyAnalyzeBathroomsDefaultToBedrooms(t *testing.T) {
	listings := &fakeListings{records: marinaComparables()}
	a := newPropertyAnalyzer(listings, &fakePublisher{}, newFakeMetrics(), t)

	req := marinaRequest()
	req.Bathrooms = 0

	res, err := a.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Target.Bathrooms != req.Bedrooms {
		t.Fatalf("bathrooms = %d, want bedroom count %d", res.Target.Bathrooms, req.Bedrooms)
	}
}
