package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

func TestEvaluateCryptoScenario(t *testing.T) {
	quote := models.AssetQuote{
		Name:             "Bitcoin",
		Symbol:           "BTC",
		UnitPrice:        45,
		CirculatingUnits: 15_000_000,
		MaxUnits:         fptr(21_000_000),
		NewUnitsPerYear:  fptr(657_000),
		TotalLockedValue: 1_600_000_000,
	}

	res := EvaluateCrypto(quote)

	if math.Abs(res.Metrics.InflationRatePct-4.38) > 1e-9 {
		t.Fatalf("inflation rate = %v, want 4.38", res.Metrics.InflationRatePct)
	}
	if res.InflationSignal != models.SignalInflationMedium {
		t.Fatalf("inflation signal = %v, want medium", res.InflationSignal)
	}
	if res.Metrics.FullyDilutedValue == nil || *res.Metrics.FullyDilutedValue != 945_000_000 {
		t.Fatalf("fdv = %v, want 945000000", res.Metrics.FullyDilutedValue)
	}
	if res.Metrics.ValueRatio == nil || math.Abs(*res.Metrics.ValueRatio-0.59) > 1e-9 {
		t.Fatalf("value ratio = %v, want 0.59", res.Metrics.ValueRatio)
	}
	if res.ValuationSignal != models.SignalUndervalued {
		t.Fatalf("valuation signal = %v, want undervalued", res.ValuationSignal)
	}
	if res.Verdict != models.VerdictBuy {
		t.Fatalf("verdict = %v, want BUY", res.Verdict)
	}
	if len(res.Reasoning) != 2 {
		t.Fatalf("reasoning = %v, want 2 entries", res.Reasoning)
	}
}

func TestInflationBoundaries(t *testing.T) {
	cases := []struct {
		newUnits float64
		want     models.Signal
	}{
		{10.0, models.SignalInflationMedium}, // exactly 10% resolves down
		{10.01, models.SignalInflationHigh},
		{3.0, models.SignalInflationLow},
		{3.01, models.SignalInflationMedium},
		{0, models.SignalInflationLow},
	}

	for _, tc := range cases {
		quote := models.AssetQuote{
			UnitPrice:        1,
			CirculatingUnits: 100,
			NewUnitsPerYear:  fptr(tc.newUnits),
		}
		res := EvaluateCrypto(quote)
		if res.InflationSignal != tc.want {
			t.Fatalf("issuance %v: inflation signal = %v, want %v", tc.newUnits, res.InflationSignal, tc.want)
		}
	}
}

func TestValueRatioBoundaries(t *testing.T) {
	cases := []struct {
		maxUnits float64
		want     models.Signal
	}{
		{299, models.SignalUndervalued},
		{300, models.SignalFairValue}, // ratio 3 is fair, not undervalued
		{999, models.SignalFairValue},
		{1000, models.SignalOvervalued}, // ratio 10 is overvalued
	}

	for _, tc := range cases {
		quote := models.AssetQuote{
			UnitPrice:        1,
			CirculatingUnits: 100,
			MaxUnits:         fptr(tc.maxUnits),
			TotalLockedValue: 100,
		}
		res := EvaluateCrypto(quote)
		if res.ValuationSignal != tc.want {
			t.Fatalf("max %v: valuation signal = %v, want %v", tc.maxUnits, res.ValuationSignal, tc.want)
		}
	}
}

func TestZeroLockedValueIsInsufficientData(t *testing.T) {
	quote := models.AssetQuote{
		UnitPrice:        10,
		CirculatingUnits: 1000,
		MaxUnits:         fptr(2000),
	}

	res := EvaluateCrypto(quote)

	if res.ValuationSignal != models.SignalInsufficientData {
		t.Fatalf("valuation signal = %v, want insufficient_data", res.ValuationSignal)
	}
	if res.Verdict != models.VerdictInsufficientData {
		t.Fatalf("verdict = %v, want INSUFFICIENT_DATA", res.Verdict)
	}
	if res.Metrics.ValueRatio != nil {
		t.Fatalf("value ratio = %v, want nil", *res.Metrics.ValueRatio)
	}
}

func TestHighInflationDominatesVerdict(t *testing.T) {
	quote := models.AssetQuote{
		UnitPrice:        1,
		CirculatingUnits: 100,
		MaxUnits:         fptr(150),
		NewUnitsPerYear:  fptr(20), // 20% inflation
		TotalLockedValue: 1000,     // ratio 0.15, deeply undervalued
	}

	res := EvaluateCrypto(quote)

	if res.Verdict != models.VerdictAvoidHighInflation {
		t.Fatalf("verdict = %v, want AVOID_HIGH_INFLATION", res.Verdict)
	}
}

func TestCryptoVerdictTable(t *testing.T) {
	cases := []struct {
		newUnits float64 // per 100 circulating
		maxUnits float64
		tvl      float64
		want     models.Verdict
	}{
		{1, 200, 100, models.VerdictStrongBuy},       // low inflation, undervalued
		{5, 200, 100, models.VerdictBuy},             // medium inflation, undervalued
		{1, 500, 100, models.VerdictHold},            // low inflation, fair
		{5, 2000, 100, models.VerdictAvoidOvervalued}, // overvalued
		{5, 500, 100, models.VerdictHoldMonitor},     // medium inflation, fair
	}

	for _, tc := range cases {
		quote := models.AssetQuote{
			UnitPrice:        1,
			CirculatingUnits: 100,
			MaxUnits:         fptr(tc.maxUnits),
			NewUnitsPerYear:  fptr(tc.newUnits),
			TotalLockedValue: tc.tvl,
		}
		res := EvaluateCrypto(quote)
		if res.Verdict != tc.want {
			t.Fatalf("issuance %v max %v: verdict = %v, want %v", tc.newUnits, tc.maxUnits, res.Verdict, tc.want)
		}
	}
}

func TestIssuanceFallbackFromSupplyGap(t *testing.T) {
	quote := models.AssetQuote{
		UnitPrice:        45,
		CirculatingUnits: 15_000_000,
		TotalUnits:       fptr(21_000_000),
	}

	res := EvaluateCrypto(quote)

	// (21M - 15M) / 5 = 1.2M per year, 8% of circulating.
	if math.Abs(res.Metrics.InflationRatePct-8.0) > 1e-9 {
		t.Fatalf("inflation rate = %v, want 8.0", res.Metrics.InflationRatePct)
	}
	if res.InflationSignal != models.SignalInflationMedium {
		t.Fatalf("inflation signal = %v, want medium", res.InflationSignal)
	}
}

func TestSupplyCapFallsBackToCirculating(t *testing.T) {
	quote := models.AssetQuote{
		UnitPrice:        2,
		CirculatingUnits: 500,
		TotalLockedValue: 100,
	}

	res := EvaluateCrypto(quote)

	if res.Metrics.FullyDilutedValue == nil || *res.Metrics.FullyDilutedValue != 1000 {
		t.Fatalf("fdv = %v, want 1000", res.Metrics.FullyDilutedValue)
	}
}

func TestEvaluateCryptoIdempotent(t *testing.T) {
	quote := models.AssetQuote{
		Name:             "Zcash",
		Symbol:           "ZEC",
		UnitPrice:        30,
		CirculatingUnits: 16_000_000,
		MaxUnits:         fptr(21_000_000),
		NewUnitsPerYear:  fptr(450_000),
		TotalLockedValue: 50_000_000,
	}

	first := EvaluateCrypto(quote)
	second := EvaluateCrypto(quote)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestInflationClassifiesExactRate(t *testing.T) {
	// 10.004% rounds to 10.0 for reporting but still classifies as high.
	quote := models.AssetQuote{
		Name:             "Testcoin",
		Symbol:           "TST",
		UnitPrice:        1,
		CirculatingUnits: 100_000,
		MaxUnits:         fptr(100_000),
		NewUnitsPerYear:  fptr(10_004),
		TotalLockedValue: 50_000,
	}

	res := EvaluateCrypto(quote)

	if res.Metrics.InflationRatePct != 10.0 {
		t.Fatalf("reported inflation = %v, want 10.0", res.Metrics.InflationRatePct)
	}
	if res.InflationSignal != models.SignalInflationHigh {
		t.Fatalf("inflation signal = %v, want high", res.InflationSignal)
	}
	if res.Verdict != models.VerdictAvoidHighInflation {
		t.Fatalf("verdict = %v, want AVOID_HIGH_INFLATION", res.Verdict)
	}
}

func TestValueRatioClassifiesExactRatio(t *testing.T) {
	// Ratio 2.996 rounds to 3.00 for reporting but still classifies as
	// undervalued.
	quote := models.AssetQuote{
		Name:             "Testcoin",
		Symbol:           "TST",
		UnitPrice:        1,
		CirculatingUnits: 100,
		MaxUnits:         fptr(2996),
		TotalLockedValue: 1000,
	}

	res := EvaluateCrypto(quote)

	if res.Metrics.ValueRatio == nil || *res.Metrics.ValueRatio != 3.0 {
		t.Fatalf("reported ratio = %v, want 3.0", res.Metrics.ValueRatio)
	}
	if res.ValuationSignal != models.SignalUndervalued {
		t.Fatalf("valuation signal = %v, want undervalued", res.ValuationSignal)
	}
	if res.Verdict != models.VerdictStrongBuy {
		t.Fatalf("verdict = %v, want STRONG_BUY", res.Verdict)
	}
}

func TestZeroPriceIsInsufficientData(t *testing.T) {
	quote := models.AssetQuote{
		Name:             "Testcoin",
		Symbol:           "TST",
		UnitPrice:        0,
		CirculatingUnits: 100,
		TotalLockedValue: 500,
	}

	res := EvaluateCrypto(quote)

	if res.Metrics.ValueRatio != nil {
		t.Fatalf("ratio = %v, want nil for zero diluted value", *res.Metrics.ValueRatio)
	}
	if res.ValuationSignal != models.SignalInsufficientData {
		t.Fatalf("valuation signal = %v, want insufficient_data", res.ValuationSignal)
	}
	if res.Verdict != models.VerdictInsufficientData {
		t.Fatalf("verdict = %v, want INSUFFICIENT_DATA", res.Verdict)
	}
}
