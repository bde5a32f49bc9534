package defillama

import "strings"

// protocolSlugs maps common asset/protocol names to DeFiLlama slugs.
var protocolSlugs = map[string]string{
	// Layer 1s with DeFi ecosystems
	"ethereum":      "ethereum",
	"eth":           "ethereum",
	"bitcoin":       "bitcoin",
	"btc":           "bitcoin",
	"solana":        "solana",
	"sol":           "solana",
	"cardano":       "cardano",
	"ada":           "cardano",
	"avalanche":     "avalanche",
	"avax":          "avalanche",
	"polkadot":      "polkadot",
	"dot":           "polkadot",
	"polygon":       "polygon",
	"matic":         "polygon",
	"cosmos":        "cosmos",
	"atom":          "cosmos",
	"algorand":      "algorand",
	"algo":          "algorand",
	"tezos":         "tezos",
	"xtz":           "tezos",
	"near protocol": "near",
	"near":          "near",
	"fantom":        "fantom",
	"ftm":           "fantom",
	"harmony":       "harmony",
	"one":           "harmony",
	"elrond":        "multiversx",
	"egld":          "multiversx",
	"multiversx":    "multiversx",
	"zilliqa":       "zilliqa",
	"zil":           "zilliqa",

	// Major DeFi protocols
	"aave":        "aave",
	"uniswap":     "uniswap",
	"compound":    "compound",
	"makerdao":    "makerdao",
	"maker":       "makerdao",
	"curve":       "curve",
	"lido":        "lido",
	"pancakeswap": "pancakeswap",
	"sushiswap":   "sushi",
	"balancer":    "balancer",
	"yearn":       "yearn-finance",
	"synthetix":   "synthetix",
	"convex":      "convex-finance",
	"rocket pool": "rocket-pool",
	"frax":        "frax",

	// Layer 2s
	"arbitrum": "arbitrum",
	"optimism": "optimism",
	"base":     "base",

	// Privacy coins; often no TVL listed
	"zcash":  "zcash",
	"zec":    "zcash",
	"monero": "monero",
	"xmr":    "monero",

	// Oracles
	"chainlink": "chainlink",
	"link":      "chainlink",

	// Other popular protocols
	"gmx":       "gmx",
	"thorchain": "thorchain",
	"osmosis":   "osmosis",
	"jito":      "jito",
	"kamino":    "kamino",
}

// ProtocolSlug converts a user-friendly name to a DeFiLlama slug. Unknown
// names pass through normalized so unlisted protocols can still be queried.
func ProtocolSlug(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if slug, ok := protocolSlugs[normalized]; ok {
		return slug
	}
	return normalized
}
