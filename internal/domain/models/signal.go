package models

// Signal is a discrete classification of a continuous metric against
// fixed thresholds.
type Signal string

const (
	// Inflation signals.
	SignalInflationLow    Signal = "low"
	SignalInflationMedium Signal = "medium"
	SignalInflationHigh   Signal = "high"

	// Valuation-ratio signals.
	SignalUndervalued      Signal = "undervalued"
	SignalFairValue        Signal = "fair"
	SignalOvervalued       Signal = "overvalued"
	SignalInsufficientData Signal = "insufficient_data"

	// Property price signals.
	SignalUnderpriced  Signal = "underpriced"
	SignalPriceNeutral Signal = "neutral"
	SignalOverpriced   Signal = "overpriced"

	// Rental yield signals.
	SignalYieldAttractive Signal = "attractive"
	SignalYieldNeutral    Signal = "neutral"
	SignalYieldLow        Signal = "low"
)

// Verdict is the final investment recommendation label.
type Verdict string

const (
	VerdictStrongBuy          Verdict = "STRONG_BUY"
	VerdictBuy                Verdict = "BUY"
	VerdictHold               Verdict = "HOLD"
	VerdictHoldMonitor        Verdict = "HOLD_MONITOR"
	VerdictAvoid              Verdict = "AVOID"
	VerdictAvoidHighInflation Verdict = "AVOID_HIGH_INFLATION"
	VerdictAvoidOvervalued    Verdict = "AVOID_OVERVALUED"
	VerdictInsufficientData   Verdict = "INSUFFICIENT_DATA"
)

// Confidence is the reported confidence tier for a property verdict,
// derived from comparable-set size. It never changes the verdict label.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)
