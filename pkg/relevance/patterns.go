package relevance

import "regexp"

// pattern is one classification rule. Either re or keywords is set.
// titleOnly restricts matching to the title for patterns that are too
// noisy against full article text.
type pattern struct {
	name      string
	reason    string
	titleOnly bool
	re        *regexp.Regexp
	keywords  []string
}

// tier3Patterns exclude low-signal content. Evaluated before tier 1 so
// a "price prediction" piece that happens to mention the SEC stays out.
var tier3Patterns = []pattern{
	{
		name:      "price_prediction",
		reason:    "price prediction / speculation content",
		re:        regexp.MustCompile(`price prediction|price forecast|price target for|will .{1,40}(hit|reach|hit \$|reach \$)|\$[0-9,.]+ (by|in) (20[2-9][0-9]|q[1-4])`),
	},
	{
		name:      "listicle",
		reason:    "listicle / coins-to-watch roundup",
		titleOnly: true,
		re:        regexp.MustCompile(`top \d+ (coins|cryptos|tokens|altcoins)|best (coins|cryptos|tokens|altcoins) to (buy|watch)|\d+ (coins|cryptos|altcoins) (to watch|that could)`),
	},
	{
		name:     "entertainment",
		reason:   "game/entertainment content unrelated to crypto infrastructure",
		keywords: []string{"play-to-earn guide", "nft game review", "casino bonus", "sports betting odds", "fan token giveaway"},
	},
	{
		name:     "astrology",
		reason:   "astrology / horoscope framing",
		keywords: []string{"horoscope", "astrology", "zodiac", "mercury retrograde"},
	},
	{
		name:      "stock_roundup",
		reason:    "generic stock-market roundup",
		titleOnly: true,
		re:        regexp.MustCompile(`stocks to (buy|watch)|stock market today|premarket movers`),
	},
}

// tier1Patterns promote high-signal events: enforcement, exploits,
// regulatory decisions, large ETF flows, protocol events, nation-state
// adoption.
var tier1Patterns = []pattern{
	{
		name:     "enforcement",
		reason:   "enforcement action",
		keywords: []string{"lawsuit", "sues ", "sued ", "indicted", "indictment", "charges against", "charged with", "settlement with", "subpoena", "enforcement action", "cease and desist", "arrested", "pleads guilty", "sentenced"},
	},
	{
		name:     "exploit",
		reason:   "exploit / hack / security incident",
		keywords: []string{"exploit", "hacked", "hacker", "stolen funds", "drained", "vulnerability", "rug pull", "security breach", "attack vector", "flash loan attack", "bridge hack"},
	},
	{
		name:     "regulatory",
		reason:   "regulatory decision",
		keywords: []string{"sec approves", "sec rejects", "sec delays", "regulatory approval", "license granted", "banned crypto", "legislation passed", "executive order", " mica ", "stablecoin bill", "etf approval", "etf decision", "cftc ruling"},
	},
	{
		name:   "etf_flow",
		reason: "large ETF flow",
		re:     regexp.MustCompile(`etf.{0,60}\$[0-9,.]+ ?(b|billion|[1-9][0-9]{2,} ?m|[1-9][0-9]{2,} ?million)|(inflow|outflow)s? of \$[0-9,.]+ ?(b|billion)`),
	},
	{
		name:     "protocol_event",
		reason:   "protocol-level event",
		keywords: []string{"hard fork", "mainnet launch", "network upgrade", "halving", "consensus failure", "chain halt", "network outage", "genesis block", "testnet launch", "eip-", "protocol upgrade"},
	},
	{
		name:     "nation_state",
		reason:   "nation-state adoption",
		keywords: []string{"legal tender", "national reserve", "strategic reserve", "central bank digital", "cbdc launch", "government adopts", "sovereign wealth"},
	},
}
