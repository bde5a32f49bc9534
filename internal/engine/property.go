package engine

import (
	"fmt"
	"math"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/util"
)

// InsufficientComparablesError is returned when the filtered comparable set
// is too small for a defensible point estimate.
type InsufficientComparablesError struct {
	Found      int
	Suggestion string
}

func (e *InsufficientComparablesError) Error() string {
	return fmt.Sprintf("insufficient comparable properties found (%d, need %d)", e.Found, MinComparables)
}

// FilterComparables reduces a raw candidate list to the similarity window:
// same type, same bedroom count, price and size within the comparable window
// of the target. Order is preserved.
func FilterComparables(target models.PropertyRecord, candidates []models.PropertyRecord) []models.PropertyRecord {
	minPrice := target.PriceAED * (1 - ComparableWindowPct)
	maxPrice := target.PriceAED * (1 + ComparableWindowPct)
	minSize := target.SizeSqft * (1 - ComparableWindowPct)
	maxSize := target.SizeSqft * (1 + ComparableWindowPct)

	comps := make([]models.PropertyRecord, 0, len(candidates))
	for _, c := range candidates {
		if c.PropertyType != target.PropertyType || c.Bedrooms != target.Bedrooms {
			continue
		}
		if c.PriceAED < minPrice || c.PriceAED > maxPrice {
			continue
		}
		if c.SizeSqft < minSize || c.SizeSqft > maxSize {
			continue
		}
		comps = append(comps, c)
	}
	return comps
}

// EvaluateProperty values a target against provider-supplied candidates.
// Fewer than MinComparables after filtering returns a typed error and no
// partial result.
func EvaluateProperty(target models.PropertyRecord, candidates []models.PropertyRecord) (models.PropertyResult, error) {
	comps := FilterComparables(target, candidates)
	if len(comps) < MinComparables {
		return models.PropertyResult{}, &InsufficientComparablesError{
			Found:      len(comps),
			Suggestion: "Try adjusting search criteria",
		}
	}

	estimated := estimateValue(target, comps)
	rent := rentEstimate(target)
	yieldPct := 100 * rent.AvgAnnualAED / estimated

	valuation := models.PropertyValuation{
		EstimatedValueAED:    math.Round(estimated),
		ConfidenceLowAED:     math.Round(estimated * (1 - ConfidenceBandPct)),
		ConfidenceHighAED:    math.Round(estimated * (1 + ConfidenceBandPct)),
		PriceToEstimateRatio: util.Round(target.PriceAED/estimated, 3),
		RentalYieldPct:       util.Round(yieldPct, 2),
		RentEstimate:         rent,
		ComparableCount:      len(comps),
	}

	benchmark := yieldBenchmark(target.Area)
	ratio := target.PriceAED / estimated

	// Signals classify the exact ratio and yield; the rounded figures in
	// valuation are presentation only.
	priceSignal := classifyPriceRatio(ratio)
	yieldSignal := classifyYield(yieldPct, benchmark)

	return models.PropertyResult{
		Target:      target,
		Valuation:   valuation,
		PriceSignal: priceSignal,
		YieldSignal: yieldSignal,
		Verdict:     resolvePropertyVerdict(priceSignal, yieldSignal),
		Confidence:  confidenceTier(len(comps)),
		Reasoning:   propertyReasoning(priceSignal, yieldSignal, ratio, yieldPct),
	}, nil
}

// estimateValue scales the mean comparable price-per-sqft to the target
// size. Averaging per-sqft prices rather than raw prices is what makes
// differently sized comparables commensurable.
func estimateValue(target models.PropertyRecord, comps []models.PropertyRecord) float64 {
	var sum float64
	var n int
	for _, c := range comps {
		if c.SizeSqft > 0 {
			sum += c.PricePerSqft()
			n++
		}
	}
	if n == 0 {
		return target.PriceAED
	}
	return (sum / float64(n)) * target.SizeSqft
}

func rentEstimate(target models.PropertyRecord) models.RentEstimate {
	r := annualRentRange(target.Area, target.Bedrooms, target.SizeSqft)
	return models.RentEstimate{
		MinAnnualAED: math.Round(r.min),
		AvgAnnualAED: math.Round((r.min + r.max) / 2),
		MaxAnnualAED: math.Round(r.max),
	}
}

func classifyPriceRatio(ratio float64) models.Signal {
	switch {
	case ratio < PriceUnderpricedBelow:
		return models.SignalUnderpriced
	case ratio > PriceOverpricedAbove:
		return models.SignalOverpriced
	default:
		return models.SignalPriceNeutral
	}
}

func classifyYield(yieldPct, benchmarkPct float64) models.Signal {
	switch {
	case yieldPct > benchmarkPct*YieldAttractiveFactor:
		return models.SignalYieldAttractive
	case yieldPct < benchmarkPct*YieldLowFactor:
		return models.SignalYieldLow
	default:
		return models.SignalYieldNeutral
	}
}

// resolvePropertyVerdict weighs the two orthogonal signals equally. Buy
// branches are checked before avoid branches, so an underpriced listing
// with a weak yield still resolves to BUY.
func resolvePropertyVerdict(price, yield models.Signal) models.Verdict {
	switch {
	case price == models.SignalUnderpriced && yield == models.SignalYieldAttractive:
		return models.VerdictStrongBuy
	case price == models.SignalUnderpriced || yield == models.SignalYieldAttractive:
		return models.VerdictBuy
	case price == models.SignalOverpriced || yield == models.SignalYieldLow:
		return models.VerdictAvoid
	default:
		return models.VerdictHold
	}
}

func confidenceTier(comparables int) models.Confidence {
	switch {
	case comparables > ConfidenceHighAbove:
		return models.ConfidenceHigh
	case comparables < ConfidenceLowBelow:
		return models.ConfidenceLow
	default:
		return models.ConfidenceMedium
	}
}

func propertyReasoning(price, yield models.Signal, ratio, yieldPct float64) []string {
	reasons := make([]string, 0, 2)

	switch price {
	case models.SignalUnderpriced:
		reasons = append(reasons, fmt.Sprintf("Priced %.1f%% below estimate", (1-ratio)*100))
	case models.SignalOverpriced:
		reasons = append(reasons, fmt.Sprintf("Priced %.1f%% above estimate", (ratio-1)*100))
	default:
		reasons = append(reasons, "Asking price in line with comparable-based estimate")
	}

	switch yield {
	case models.SignalYieldAttractive:
		reasons = append(reasons, fmt.Sprintf("Yield %.1f%% above area average", yieldPct))
	case models.SignalYieldLow:
		reasons = append(reasons, "Yield below area average")
	default:
		reasons = append(reasons, fmt.Sprintf("Yield %.1f%% in line with area average", yieldPct))
	}

	return reasons
}
