package coingecko

import "strings"

// coinIDs maps friendly names and tickers to CoinGecko asset ids.
var coinIDs = map[string]string{
	// Bitcoin and forks
	"btc":         "bitcoin",
	"bitcoin":     "bitcoin",
	"bch":         "bitcoin-cash",
	"bitcoincash": "bitcoin-cash",

	// Ethereum and L2s
	"eth":      "ethereum",
	"ethereum": "ethereum",
	"matic":    "polygon",
	"polygon":  "polygon",

	// Major altcoins
	"ada":      "cardano",
	"cardano":  "cardano",
	"sol":      "solana",
	"solana":   "solana",
	"dot":      "polkadot",
	"polkadot": "polkadot",

	// Privacy coins
	"zec":    "zcash",
	"zcash":  "zcash",
	"xmr":    "monero",
	"monero": "monero",

	// Stablecoins
	"usdt":    "tether",
	"tether":  "tether",
	"usdc":    "usd-coin",
	"usdcoin": "usd-coin",

	// Exchange tokens
	"bnb":         "binancecoin",
	"binancecoin": "binancecoin",

	// DeFi
	"uni":     "uniswap",
	"uniswap": "uniswap",
	"aave":    "aave",

	// Meme coins
	"doge":     "dogecoin",
	"dogecoin": "dogecoin",
	"shib":     "shiba-inu",
	"shibainu": "shiba-inu",

	// Payments
	"xrp":      "ripple",
	"ripple":   "ripple",
	"ltc":      "litecoin",
	"litecoin": "litecoin",
}

// CoinID converts user input ("BTC", "Bitcoin") to a CoinGecko asset id.
// Unknown inputs pass through lowercased so niche ids still resolve.
func CoinID(userInput string) string {
	normalized := strings.ToLower(strings.TrimSpace(userInput))
	if id, ok := coinIDs[normalized]; ok {
		return id
	}
	return normalized
}
