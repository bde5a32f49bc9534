package models

// Requests for valuation HTTP endpoints. Defined in domain for consistency
// and reuse.

type CryptoAnalyzeRequest struct {
	// Asset accepts friendly names ("btc", "Bitcoin") or CoinGecko ids.
	Asset string `json:"asset" validate:"required,min=2,max=64"`
	// NewUnitsPerYear is the whitepaper issuance figure. When absent the
	// engine estimates it from the supply gap.
	NewUnitsPerYear *float64 `json:"new_units_per_year,omitempty" validate:"omitempty,gte=0"`
	// ValueLockedUSD overrides the provider-sourced total value locked.
	ValueLockedUSD *float64 `json:"value_locked_usd,omitempty" validate:"omitempty,gte=0"`
}

type PropertyAnalyzeRequest struct {
	Area         string  `json:"area" validate:"required,min=3,max=64"`
	PropertyType string  `json:"property_type" validate:"required,oneof=apartment villa townhouse penthouse studio"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0,lte=20"`
	// Bathrooms defaults to the bedroom count when omitted.
	Bathrooms    int     `json:"bathrooms" validate:"gte=0,lte=20"`
	SizeSqft     float64 `json:"size_sqft" validate:"required,gt=0"`
	AskingAED    float64 `json:"asking_price_aed" validate:"required,gt=0"`
}
