package models

import "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/util"

// PropertyRecord describes one Dubai property, either the valuation target
// or a market comparable.
type PropertyRecord struct {
	Area         string  `json:"area"`
	PropertyType string  `json:"property_type"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	SizeSqft     float64 `json:"size_sqft"`
	PriceAED     float64 `json:"price_aed"`
}

// PricePerSqft returns the price normalized by size, or 0 for zero size.
func (p PropertyRecord) PricePerSqft() float64 {
	return util.SafeDivide(p.PriceAED, p.SizeSqft, 0)
}

// ListingQuery is the search window handed to a listings provider.
type ListingQuery struct {
	Area         string
	PropertyType string
	Bedrooms     int
	MinPrice     float64
	MaxPrice     float64
	MinSize      float64
	MaxSize      float64
}

// RentEstimate is an annual rent range for the target property.
type RentEstimate struct {
	MinAnnualAED float64 `json:"min_annual_aed"`
	AvgAnnualAED float64 `json:"avg_annual_aed"`
	MaxAnnualAED float64 `json:"max_annual_aed"`
}

// PropertyValuation holds the comparable-based fair value and derived metrics.
type PropertyValuation struct {
	EstimatedValueAED    float64      `json:"estimated_value_aed"`
	ConfidenceLowAED     float64      `json:"confidence_low_aed"`
	ConfidenceHighAED    float64      `json:"confidence_high_aed"`
	PriceToEstimateRatio float64      `json:"price_to_estimate_ratio"`
	RentalYieldPct       float64      `json:"rental_yield_pct"`
	RentEstimate         RentEstimate `json:"rent_estimate"`
	ComparableCount      int          `json:"comparable_count"`
}

// PropertyResult is the terminal record of a property valuation.
type PropertyResult struct {
	Target      PropertyRecord    `json:"target"`
	Valuation   PropertyValuation `json:"valuation"`
	PriceSignal Signal            `json:"price_signal"`
	YieldSignal Signal            `json:"yield_signal"`
	Verdict     Verdict           `json:"verdict"`
	Confidence  Confidence        `json:"confidence"`
	Reasoning   []string          `json:"reasoning"`
}
