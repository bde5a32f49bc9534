package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/usecase"
	pkgcache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/cache"
	applogger "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/logger"
)

type stubMarket struct{ quote models.AssetQuote }

func (s *stubMarket) Quote(context.Context, string) (*models.AssetQuote, error) {
	q := s.quote
	return &q, nil
}

type stubTVL struct{ tvl float64 }

func (s *stubTVL) TVL(context.Context, string) (float64, error) { return s.tvl, nil }

type stubListings struct{ records []models.PropertyRecord }

func (s *stubListings) Search(context.Context, models.ListingQuery) ([]models.PropertyRecord, error) {
	return s.records, nil
}

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, *models.AnalysisEvent) error { return nil }
func (stubPublisher) Close() error                                         { return nil }

type stubMetrics struct{}

func (stubMetrics) RecordAnalysis(string, string)    {}
func (stubMetrics) RecordProviderError(string)       {}
func (stubMetrics) RecordLastPrice(string, float64)  {}
func (stubMetrics) RecordLatency(string, float64)    {}

func newTestHandler(t *testing.T) *ValuationsHandler {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	maxUnits := 21_000_000.0
	issuance := 657_000.0
	market := &stubMarket{quote: models.AssetQuote{
		Name: "Bitcoin", Symbol: "BTC", UnitPrice: 45,
		CirculatingUnits: 15_000_000, MaxUnits: &maxUnits, NewUnitsPerYear: &issuance,
	}}

	comps := make([]models.PropertyRecord, 0, 4)
	for _, size := range []float64{1000, 1100, 1200, 1300} {
		comps = append(comps, models.PropertyRecord{
			Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 2, Bathrooms: 2,
			SizeSqft: size, PriceAED: size * 1500,
		})
	}

	crypto := usecase.NewCryptoAnalyzer(market, &stubTVL{tvl: 1_600_000_000}, stubPublisher{}, stubMetrics{},
		pkgcache.NewMemoryCache(), time.Minute, l)
	property := usecase.NewPropertyAnalyzer(&stubListings{records: comps}, stubPublisher{}, stubMetrics{},
		pkgcache.NewMemoryCache(), time.Minute, l)

	return NewValuationsHandler(l, crypto, property)
}

func doJSON(t *testing.T, h *ValuationsHandler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCryptoEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/api/crypto", `{"asset":"btc"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("http status = %d, body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int                 `json:"status"`
		Data   models.CryptoResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusOK {
		t.Fatalf("envelope status = %d", envelope.Status)
	}
	if envelope.Data.Verdict != models.VerdictBuy {
		t.Fatalf("verdict = %v, want BUY", envelope.Data.Verdict)
	}
}

func TestCryptoEndpointRejectsMissingAsset(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/api/crypto", `{}`)

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", envelope.Status)
	}
}

func TestPropertyEndpoint(t *testing.T) {
	h := newTestHandler(t)
	body := `{"area":"Dubai Marina","property_type":"apartment","bedrooms":2,"size_sqft":1200,"asking_price_aed":1800000}`
	rec := doJSON(t, h, http.MethodPost, "/api/property", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("http status = %d, body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int                   `json:"status"`
		Data   models.PropertyResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Valuation.EstimatedValueAED != 1_800_000 {
		t.Fatalf("estimated value = %v, want 1800000", envelope.Data.Valuation.EstimatedValueAED)
	}
	if envelope.Data.Valuation.ComparableCount != 4 {
		t.Fatalf("comparable count = %v, want 4", envelope.Data.Valuation.ComparableCount)
	}
}

func TestPropertyEndpointRejectsUnknownType(t *testing.T) {
	h := newTestHandler(t)
	body := `{"area":"Dubai Marina","property_type":"castle","bedrooms":2,"size_sqft":1200,"asking_price_aed":1800000}`
	rec := doJSON(t, h, http.MethodPost, "/api/property", body)

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", envelope.Status)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("http status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
