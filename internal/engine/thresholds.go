package engine

// Classification thresholds and policy constants. These are fixed design
// constants, not runtime configuration; changing them changes the output
// contract of the engine.
const (
	// Annual inflation above this is high, above InflationMediumPct is
	// medium, everything else is low. Boundaries resolve toward the less
	// extreme label, so exactly 10.0% classifies as medium.
	InflationHighPct   = 10.0
	InflationMediumPct = 3.0

	// Fully-diluted value to total-value-locked ratio bands. Below
	// RatioUndervaluedBelow is undervalued, below RatioFairBelow is fair,
	// the rest is overvalued. Both bounds are exclusive on the low side.
	RatioUndervaluedBelow = 3.0
	RatioFairBelow        = 10.0

	// Asking price relative to the comparable-based estimate.
	PriceUnderpricedBelow = 0.90
	PriceOverpricedAbove  = 1.10

	// Rental yield relative to the area benchmark average.
	YieldAttractiveFactor = 1.1
	YieldLowFactor        = 0.9

	// Comparable selection window around the target price and size.
	ComparableWindowPct = 0.20

	// Minimum filtered comparables before a point estimate is allowed.
	MinComparables = 3

	// Reported interval around the point estimate. Communicates
	// estimation uncertainty, not a statistical confidence interval.
	ConfidenceBandPct = 0.10

	// Comparable-count tiers for the reported confidence label.
	ConfidenceHighAbove = 10
	ConfidenceLowBelow  = 5

	// Approximation for annual issuance when the whitepaper figure is not
	// supplied: remaining supply released linearly over five years. A
	// heuristic, not a tokenomics model.
	IssuanceFallbackYears = 5.0

	// Benchmark yield for areas without a published band.
	DefaultYieldBenchmarkPct = 6.0

	// Rent fallback when no area/bedroom range exists: 80 AED per sqft
	// per year, widened to an 0.8x..1.2x range. A heuristic constant.
	FallbackRentPerSqft = 80.0
	RentRangeLowFactor  = 0.8
	RentRangeHighFactor = 1.2
)
