package defillama

import (
	"sort"
	"strings"
)

// tvlMultipliers is the share of market cap typically locked, per asset.
// Conservative approximations for assets without direct DeFi protocols.
var tvlMultipliers = map[string]float64{
	// Privacy coins, based on shielded pool usage
	"zcash":  0.05,
	"monero": 0.80,

	// Smart contract platforms with staking
	"ethereum":  0.25,
	"cardano":   0.65,
	"solana":    0.70,
	"polkadot":  0.55,
	"avalanche": 0.60,
	"algorand":  0.65,
	"tezos":     0.70,
	"cosmos":    0.65,
	"near":      0.60,
	"fantom":    0.50,
	"harmony":   0.45,
	"elrond":    0.60,
	"zilliqa":   0.50,

	// Layer 2s, pegged to parent chain activity
	"polygon":  0.30,
	"arbitrum": 0.20,
	"optimism": 0.20,

	// Bitcoin, long-term holder estimate
	"bitcoin": 0.50,

	// Oracles and infrastructure
	"chainlink": 0.40,
	"theta":     0.45,
	"vechain":   0.35,
	"hedera":    0.40,
}

const defaultTVLMultiplier = 0.10

// multiplierKeys holds the table keys in sorted order so lenient matching
// resolves the same key on every call.
var multiplierKeys = func() []string {
	keys := make([]string, 0, len(tvlMultipliers))
	for k := range tvlMultipliers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// EstimateTVL approximates locked value from market cap for assets the TVL
// API does not cover. Matching is lenient: substring of the name or an exact
// symbol hit.
func EstimateTVL(name, symbol string, marketCap float64) float64 {
	if marketCap <= 0 {
		return 0
	}

	lowName := strings.ToLower(name)
	lowSymbol := strings.ToLower(symbol)
	for _, key := range multiplierKeys {
		if strings.Contains(lowName, key) || key == lowSymbol {
			return marketCap * tvlMultipliers[key]
		}
	}
	return marketCap * defaultTVLMultiplier
}
