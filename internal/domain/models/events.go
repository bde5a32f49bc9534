package models

import "time"

// AnalysisEvent is the outbound record published after every completed
// valuation. It is a sink-only event; nothing in this service consumes it.
type AnalysisEvent struct {
	AssetClass string    `json:"asset_class"` // "crypto" or "property"
	AssetKey   string    `json:"asset_key"`   // coin id or area:type:bedrooms
	Verdict    Verdict   `json:"verdict"`
	Confidence string    `json:"confidence,omitempty"`
	Reasoning  []string  `json:"reasoning"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}
