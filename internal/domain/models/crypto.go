package models

// AssetQuote is the merged market snapshot and whitepaper input for one
// cryptocurrency. It is built once per analysis call and never mutated.
type AssetQuote struct {
	Name             string
	Symbol           string
	UnitPrice        float64
	CirculatingUnits float64
	MaxUnits         *float64 // nil when neither max nor total supply is known
	TotalUnits       *float64 // nil when unknown
	NewUnitsPerYear  *float64 // nil when not supplied; estimated from supply gap
	TotalLockedValue float64  // USD; 0 means unknown
	MarketCap        float64  // USD; only used to estimate locked value when no protocol TVL exists
}

// CryptoMetrics holds derived valuation metrics. Absent metrics stay nil
// rather than carrying a sentinel value.
type CryptoMetrics struct {
	InflationRatePct  float64  `json:"inflation_rate_pct"`
	FullyDilutedValue *float64 `json:"fully_diluted_value,omitempty"`
	ValueRatio        *float64 `json:"value_ratio,omitempty"`
}

// CryptoResult is the terminal record of a crypto valuation.
type CryptoResult struct {
	Name             string        `json:"name"`
	Symbol           string        `json:"symbol"`
	UnitPrice        float64       `json:"unit_price"`
	CirculatingUnits float64       `json:"circulating_units"`
	MaxUnits         *float64      `json:"max_units,omitempty"`
	TotalLockedValue float64       `json:"total_locked_value"`
	Metrics          CryptoMetrics `json:"metrics"`
	InflationSignal  Signal        `json:"inflation_signal"`
	ValuationSignal  Signal        `json:"valuation_signal"`
	Verdict          Verdict       `json:"verdict"`
	Reasoning        []string      `json:"reasoning"`
}
