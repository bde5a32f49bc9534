package engine

import "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"

// YieldBand is the expected gross rental yield range for an area, in percent.
type YieldBand struct {
	Min float64
	Avg float64
	Max float64
}

// AreaYields holds per-area yield expectations (2024 market data).
var AreaYields = map[repository.Area]YieldBand{
	repository.AreaDubaiMarina:      {Min: 5.5, Avg: 6.8, Max: 8.2},
	repository.AreaDowntown:         {Min: 4.5, Avg: 5.8, Max: 7.0},
	repository.AreaJBR:              {Min: 5.0, Avg: 6.5, Max: 7.8},
	repository.AreaPalmJumeirah:     {Min: 4.0, Avg: 5.2, Max: 6.5},
	repository.AreaBusinessBay:      {Min: 6.0, Avg: 7.5, Max: 9.0},
	repository.AreaDIFC:             {Min: 4.5, Avg: 5.5, Max: 6.8},
	repository.AreaJVC:              {Min: 6.5, Avg: 8.0, Max: 9.5},
	repository.AreaSportsCity:       {Min: 7.0, Avg: 8.5, Max: 10.0},
	repository.AreaDiscoveryGardens: {Min: 7.5, Avg: 9.0, Max: 11.0},
}

// yieldBenchmark returns the average expected yield for an area, or the flat
// default for areas without a published band.
func yieldBenchmark(area string) float64 {
	if band, ok := AreaYields[repository.Area(area)]; ok {
		return band.Avg
	}
	return DefaultYieldBenchmarkPct
}

type rentRange struct {
	min float64
	max float64
}

// rentRanges maps area and bedroom count to annual rent in AED.
var rentRanges = map[repository.Area]map[int]rentRange{
	repository.AreaDubaiMarina: {
		1: {80_000, 120_000},
		2: {120_000, 180_000},
		3: {180_000, 280_000},
	},
	repository.AreaDowntown: {
		0: {60_000, 90_000},
		1: {80_000, 120_000},
		2: {130_000, 200_000},
	},
	repository.AreaBusinessBay: {
		1: {70_000, 110_000},
		2: {110_000, 170_000},
		3: {170_000, 250_000},
	},
	repository.AreaJVC: {
		1: {45_000, 70_000},
		2: {70_000, 110_000},
		3: {110_000, 160_000},
	},
}

// annualRentRange returns the min/max annual rent for an area and bedroom
// count, falling back to a size-based estimate when no entry exists.
func annualRentRange(area string, bedrooms int, sizeSqft float64) rentRange {
	if byBeds, ok := rentRanges[repository.Area(area)]; ok {
		if r, ok := byBeds[bedrooms]; ok {
			return r
		}
	}
	base := sizeSqft * FallbackRentPerSqft
	return rentRange{min: base * RentRangeLowFactor, max: base * RentRangeHighFactor}
}
