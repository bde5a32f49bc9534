package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
)

func marinaTarget() models.PropertyRecord {
	return models.PropertyRecord{
		Area:         "dubai-marina",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    2,
		SizeSqft:     1200,
		PriceAED:     1_800_000,
	}
}

// comp builds a comparable around the marina target with a given
// price-per-sqft, keeping it inside the selection window.
func comp(size, pricePerSqft float64) models.PropertyRecord {
	return models.PropertyRecord{
		Area:         "dubai-marina",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    2,
		SizeSqft:     size,
		PriceAED:     size * pricePerSqft,
	}
}

func TestEvaluatePropertyScenario(t *testing.T) {
	target := marinaTarget()
	candidates := []models.PropertyRecord{
		comp(1000, 1500),
		comp(1100, 1500),
		comp(1200, 1500),
		comp(1300, 1500),
	}

	res, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Valuation.EstimatedValueAED != 1_800_000 {
		t.Fatalf("estimated value = %v, want 1800000", res.Valuation.EstimatedValueAED)
	}
	if math.Abs(res.Valuation.PriceToEstimateRatio-1.0) > 1e-9 {
		t.Fatalf("price ratio = %v, want 1.0", res.Valuation.PriceToEstimateRatio)
	}
	if res.PriceSignal != models.SignalPriceNeutral {
		t.Fatalf("price signal = %v, want neutral", res.PriceSignal)
	}
	if res.Valuation.ConfidenceLowAED != 1_620_000 || res.Valuation.ConfidenceHighAED != 1_980_000 {
		t.Fatalf("confidence band = [%v, %v], want [1620000, 1980000]",
			res.Valuation.ConfidenceLowAED, res.Valuation.ConfidenceHighAED)
	}
	if res.Valuation.ComparableCount != 4 {
		t.Fatalf("comparable count = %v, want 4", res.Valuation.ComparableCount)
	}
	if res.Confidence != models.ConfidenceLow {
		t.Fatalf("confidence = %v, want low (4 comps)", res.Confidence)
	}

	// Marina 2BR rent range 120k..180k, midpoint 150k: 8.33% on 1.8M,
	// above 1.1x the 6.8% area average.
	if math.Abs(res.Valuation.RentalYieldPct-8.33) > 1e-9 {
		t.Fatalf("yield = %v, want 8.33", res.Valuation.RentalYieldPct)
	}
	if res.YieldSignal != models.SignalYieldAttractive {
		t.Fatalf("yield signal = %v, want attractive", res.YieldSignal)
	}
	if res.Verdict != models.VerdictBuy {
		t.Fatalf("verdict = %v, want BUY", res.Verdict)
	}
}

func TestInsufficientComparables(t *testing.T) {
	target := marinaTarget()
	candidates := []models.PropertyRecord{
		comp(1000, 1500),
		comp(1300, 1500),
	}

	_, err := EvaluateProperty(target, candidates)
	if err == nil {
		t.Fatal("expected error for 2 comparables")
	}

	var ice *InsufficientComparablesError
	if !errors.As(err, &ice) {
		t.Fatalf("error type = %T, want *InsufficientComparablesError", err)
	}
	if ice.Found != 2 {
		t.Fatalf("found = %d, want 2", ice.Found)
	}
	if ice.Suggestion == "" {
		t.Fatal("expected a remediation suggestion")
	}
}

func TestFilterComparablesWindow(t *testing.T) {
	target := marinaTarget()

	outOfWindowPrice := comp(1200, 1500)
	outOfWindowPrice.PriceAED = 2_200_000 // above +20% of 1.8M

	outOfWindowSize := comp(1450, 1500) // above +20% of 1200 sqft

	wrongBedrooms := comp(1200, 1500)
	wrongBedrooms.Bedrooms = 3

	wrongType := comp(1200, 1500)
	wrongType.PropertyType = "villa"

	inWindow := comp(1150, 1450)

	got := FilterComparables(target, []models.PropertyRecord{
		outOfWindowPrice, outOfWindowSize, wrongBedrooms, wrongType, inWindow,
	})

	if len(got) != 1 {
		t.Fatalf("filtered %d comparables, want 1: %+v", len(got), got)
	}
	if got[0] != inWindow {
		t.Fatalf("kept wrong comparable: %+v", got[0])
	}
}

func TestUnderpricedWithAttractiveYieldIsStrongBuy(t *testing.T) {
	target := marinaTarget()
	target.PriceAED = 1_500_000 // ratio 0.833 vs the 1.8M estimate

	// Sizes chosen so prices stay inside the window around the lower
	// asking price while the mean ppsf stays 1500.
	candidates := []models.PropertyRecord{
		comp(1000, 1500),
		comp(1050, 1500),
		comp(1100, 1500),
	}

	res, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PriceSignal != models.SignalUnderpriced {
		t.Fatalf("price signal = %v, want underpriced", res.PriceSignal)
	}
	if res.Verdict != models.VerdictStrongBuy {
		t.Fatalf("verdict = %v, want STRONG_BUY", res.Verdict)
	}
}

func TestOverpricedIsAvoid(t *testing.T) {
	target := marinaTarget()
	target.PriceAED = 2_100_000 // ratio 1.167 vs the 1.8M estimate

	// Prices stay inside the window around the higher asking price.
	candidates := []models.PropertyRecord{
		comp(1150, 1500),
		comp(1200, 1500),
		comp(1300, 1500),
	}

	res, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PriceSignal != models.SignalOverpriced {
		t.Fatalf("price signal = %v, want overpriced", res.PriceSignal)
	}
	if res.Verdict != models.VerdictAvoid {
		t.Fatalf("verdict = %v, want AVOID", res.Verdict)
	}
}

func TestConfidenceTiers(t *testing.T) {
	target := marinaTarget()

	build := func(n int) []models.PropertyRecord {
		cs := make([]models.PropertyRecord, 0, n)
		for i := 0; i < n; i++ {
			cs = append(cs, comp(1150+float64(i*10), 1500))
		}
		return cs
	}

	cases := []struct {
		comps int
		want  models.Confidence
	}{
		{4, models.ConfidenceLow},
		{5, models.ConfidenceMedium},
		{10, models.ConfidenceMedium},
		{11, models.ConfidenceHigh},
	}

	for _, tc := range cases {
		res, err := EvaluateProperty(target, build(tc.comps))
		if err != nil {
			t.Fatalf("%d comps: unexpected error: %v", tc.comps, err)
		}
		if res.Confidence != tc.want {
			t.Fatalf("%d comps: confidence = %v, want %v", tc.comps, res.Confidence, tc.want)
		}
	}
}

func TestRentFallbackForUnlistedArea(t *testing.T) {
	target := models.PropertyRecord{
		Area:         "difc",
		PropertyType: "apartment",
		Bedrooms:     1,
		Bathrooms:    1,
		SizeSqft:     1000,
		PriceAED:     1_500_000,
	}
	candidates := []models.PropertyRecord{
		{Area: "difc", PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SizeSqft: 950, PriceAED: 1_425_000},
		{Area: "difc", PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SizeSqft: 1000, PriceAED: 1_500_000},
		{Area: "difc", PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SizeSqft: 1050, PriceAED: 1_575_000},
	}

	res, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No DIFC rent table entry: 1000 sqft * 80 AED widened by 0.8/1.2.
	rent := res.Valuation.RentEstimate
	if rent.MinAnnualAED != 64_000 || rent.AvgAnnualAED != 80_000 || rent.MaxAnnualAED != 96_000 {
		t.Fatalf("rent estimate = %+v, want 64000/80000/96000", rent)
	}
}

func TestUnknownAreaUsesDefaultBenchmark(t *testing.T) {
	if got := yieldBenchmark("al-barsha"); got != DefaultYieldBenchmarkPct {
		t.Fatalf("benchmark = %v, want %v", got, DefaultYieldBenchmarkPct)
	}
	if got := yieldBenchmark("dubai-marina"); got != 6.8 {
		t.Fatalf("benchmark = %v, want 6.8", got)
	}
}

func TestEvaluatePropertyIdempotent(t *testing.T) {
	target := marinaTarget()
	candidates := []models.PropertyRecord{
		comp(1000, 1480),
		comp(1150, 1520),
		comp(1250, 1500),
		comp(1300, 1490),
	}

	first, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestYieldClassifiesExactValue(t *testing.T) {
	// Unknown area: 6.0% benchmark, rent fallback sqft*80. The exact yield
	// 6.6012% clears the 1.1x benchmark even though it reports as 6.6.
	target := models.PropertyRecord{
		Area:         "al-furjan",
		PropertyType: "apartment",
		Bedrooms:     1,
		Bathrooms:    1,
		SizeSqft:     1000,
		PriceAED:     1_211_900,
	}
	candidates := []models.PropertyRecord{
		{Area: "al-furjan", PropertyType: "apartment", Bedrooms: 1, SizeSqft: 1000, PriceAED: 1_211_900},
		{Area: "al-furjan", PropertyType: "apartment", Bedrooms: 1, SizeSqft: 1000, PriceAED: 1_211_900},
		{Area: "al-furjan", PropertyType: "apartment", Bedrooms: 1, SizeSqft: 1000, PriceAED: 1_211_900},
	}

	res, err := EvaluateProperty(target, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(res.Valuation.RentalYieldPct-6.6) > 1e-9 {
		t.Fatalf("reported yield = %v, want 6.6", res.Valuation.RentalYieldPct)
	}
	if res.YieldSignal != models.SignalYieldAttractive {
		t.Fatalf("yield signal = %v, want attractive", res.YieldSignal)
	}
	if res.Verdict != models.VerdictBuy {
		t.Fatalf("verdict = %v, want BUY", res.Verdict)
	}
}
