package engine

import (
	"fmt"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/util"
)

// EvaluateCrypto runs the 60-second undervalued test on a market snapshot.
// It is a pure function: missing inputs degrade to absent metrics and an
// insufficient_data signal, never an error.
func EvaluateCrypto(quote models.AssetQuote) models.CryptoResult {
	metrics, inflationRate, valueRatio := deriveCryptoMetrics(quote)

	inflationSignal := classifyInflation(inflationRate)
	valuationSignal := models.SignalInsufficientData
	if valueRatio != nil {
		valuationSignal = classifyValueRatio(*valueRatio)
	}

	return models.CryptoResult{
		Name:             quote.Name,
		Symbol:           quote.Symbol,
		UnitPrice:        quote.UnitPrice,
		CirculatingUnits: quote.CirculatingUnits,
		MaxUnits:         effectiveMaxUnits(quote),
		TotalLockedValue: quote.TotalLockedValue,
		Metrics:          metrics,
		InflationSignal:  inflationSignal,
		ValuationSignal:  valuationSignal,
		Verdict:          resolveCryptoVerdict(inflationSignal, valuationSignal),
		Reasoning:        cryptoReasoning(inflationSignal, valuationSignal, metrics),
	}
}

// effectiveMaxUnits resolves the supply cap used for dilution: max supply,
// then total supply, then circulating as a floor when neither is known.
func effectiveMaxUnits(q models.AssetQuote) *float64 {
	if q.MaxUnits != nil {
		return q.MaxUnits
	}
	if q.TotalUnits != nil {
		return q.TotalUnits
	}
	circ := q.CirculatingUnits
	return &circ
}

// annualIssuance returns the whitepaper figure when supplied, otherwise
// estimates it as the remaining supply released linearly over
// IssuanceFallbackYears. Zero when neither is derivable.
func annualIssuance(q models.AssetQuote) float64 {
	if q.NewUnitsPerYear != nil {
		return *q.NewUnitsPerYear
	}
	if q.TotalUnits != nil && *q.TotalUnits > q.CirculatingUnits {
		return (*q.TotalUnits - q.CirculatingUnits) / IssuanceFallbackYears
	}
	return 0
}

// deriveCryptoMetrics returns the reported metrics plus the exact inflation
// rate and value ratio. Classification uses the exact values; rounding is
// presentation only.
func deriveCryptoMetrics(q models.AssetQuote) (models.CryptoMetrics, float64, *float64) {
	var m models.CryptoMetrics
	var inflationRate float64
	var valueRatio *float64

	if q.CirculatingUnits > 0 {
		inflationRate = 100 * annualIssuance(q) / q.CirculatingUnits
		m.InflationRatePct = util.Round(inflationRate, 2)
	}

	if max := effectiveMaxUnits(q); max != nil {
		fdv := q.UnitPrice * *max
		m.FullyDilutedValue = &fdv

		if fdv > 0 && q.TotalLockedValue > 0 {
			ratio := fdv / q.TotalLockedValue
			valueRatio = &ratio
			rounded := util.Round(ratio, 2)
			m.ValueRatio = &rounded
		}
	}

	return m, inflationRate, valueRatio
}

func classifyInflation(ratePct float64) models.Signal {
	switch {
	case ratePct > InflationHighPct:
		return models.SignalInflationHigh
	case ratePct > InflationMediumPct:
		return models.SignalInflationMedium
	default:
		return models.SignalInflationLow
	}
}

func classifyValueRatio(ratio float64) models.Signal {
	switch {
	case ratio < RatioUndervaluedBelow:
		return models.SignalUndervalued
	case ratio < RatioFairBelow:
		return models.SignalFairValue
	default:
		return models.SignalOvervalued
	}
}

// resolveCryptoVerdict is a first-match decision table. The rule order is
// part of the contract: high inflation dominates everything else.
func resolveCryptoVerdict(inflation, valuation models.Signal) models.Verdict {
	switch {
	case inflation == models.SignalInflationHigh:
		return models.VerdictAvoidHighInflation
	case valuation == models.SignalInsufficientData:
		return models.VerdictInsufficientData
	case valuation == models.SignalUndervalued && inflation == models.SignalInflationLow:
		return models.VerdictStrongBuy
	case valuation == models.SignalUndervalued:
		return models.VerdictBuy
	case valuation == models.SignalFairValue && inflation == models.SignalInflationLow:
		return models.VerdictHold
	case valuation == models.SignalOvervalued:
		return models.VerdictAvoidOvervalued
	default:
		return models.VerdictHoldMonitor
	}
}

func cryptoReasoning(inflation, valuation models.Signal, m models.CryptoMetrics) []string {
	reasons := make([]string, 0, 2)

	switch inflation {
	case models.SignalInflationLow:
		reasons = append(reasons, fmt.Sprintf("Low inflation rate (%.1f%%) indicates scarcity", m.InflationRatePct))
	case models.SignalInflationMedium:
		reasons = append(reasons, fmt.Sprintf("Moderate inflation rate (%.1f%%) - acceptable but monitor", m.InflationRatePct))
	default:
		reasons = append(reasons, fmt.Sprintf("High inflation rate (%.1f%%) reduces scarcity value", m.InflationRatePct))
	}

	if m.ValueRatio != nil {
		switch valuation {
		case models.SignalUndervalued:
			reasons = append(reasons, fmt.Sprintf("FDV/TVL ratio of %.1fx suggests undervaluation", *m.ValueRatio))
		case models.SignalFairValue:
			reasons = append(reasons, fmt.Sprintf("FDV/TVL ratio of %.1fx indicates fair pricing", *m.ValueRatio))
		case models.SignalOvervalued:
			reasons = append(reasons, fmt.Sprintf("FDV/TVL ratio of %.1fx suggests overvaluation", *m.ValueRatio))
		}
	} else {
		reasons = append(reasons, "No value-locked data available; valuation not assessable")
	}

	return reasons
}
