package entity

// aliases maps lowercased variants (ticker symbols, project names,
// common misspellings) to canonical names. Keys must be lowercase with
// no "$" prefix; Normalize strips both before lookup.
var aliases = map[string]string{
	// Bitcoin
	"btc":     "Bitcoin",
	"bitcoin": "Bitcoin",
	"xbt":     "Bitcoin",

	// Ethereum
	"eth":      "Ethereum",
	"ethereum": "Ethereum",
	"ether":    "Ethereum",

	// Major L1s
	"sol":       "Solana",
	"solana":    "Solana",
	"ada":       "Cardano",
	"cardano":   "Cardano",
	"avax":      "Avalanche",
	"avalanche": "Avalanche",
	"dot":       "Polkadot",
	"polkadot":  "Polkadot",
	"atom":      "Cosmos",
	"cosmos":    "Cosmos",
	"near":      "NEAR Protocol",
	"trx":       "Tron",
	"tron":      "Tron",
	"ton":       "TON",
	"toncoin":   "TON",
	"sui":       "Sui",
	"apt":       "Aptos",
	"aptos":     "Aptos",

	// L2s and scaling
	"matic":    "Polygon",
	"polygon":  "Polygon",
	"arb":      "Arbitrum",
	"arbitrum": "Arbitrum",
	"op":       "Optimism",
	"optimism": "Optimism",
	"base":     "Base",

	// Payments / exchange tokens
	"xrp":    "XRP",
	"ripple": "Ripple",
	"xlm":    "Stellar",
	"ltc":    "Litecoin",
	"bnb":    "BNB",
	"bch":    "Bitcoin Cash",

	// Stablecoins
	"usdt":   "Tether",
	"tether": "Tether",
	"usdc":   "USDC",
	"dai":    "DAI",

	// DeFi
	"uni":       "Uniswap",
	"uniswap":   "Uniswap",
	"aave":      "Aave",
	"link":      "Chainlink",
	"chainlink": "Chainlink",
	"mkr":       "Maker",
	"maker":     "Maker",
	"ldo":       "Lido",
	"lido":      "Lido",
	"crv":       "Curve",
	"curve":     "Curve",

	// Meme
	"doge":      "Dogecoin",
	"dogecoin":  "Dogecoin",
	"shib":      "Shiba Inu",
	"shiba inu": "Shiba Inu",
	"pepe":      "Pepe",

	// Companies and organizations
	"coinbase":     "Coinbase",
	"binance":      "Binance",
	"kraken":       "Kraken",
	"microstrategy": "MicroStrategy",
	"strategy":     "MicroStrategy",
	"blackrock":    "BlackRock",
	"grayscale":    "Grayscale",
	"tether ltd":   "Tether",
	"circle":       "Circle",
	"sec":          "SEC",
	"u.s. sec":     "SEC",
	"cftc":         "CFTC",
	"fed":          "Federal Reserve",
	"federal reserve": "Federal Reserve",
	"imf":          "IMF",
}
