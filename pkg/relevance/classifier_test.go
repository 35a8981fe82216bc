package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type golden struct {
	title string
	text  string
	tier  int
}

// goldenSet is a labeled sample of real-world headline shapes. The
// classifier must agree with at least 90% of it.
var goldenSet = []golden{
	// Tier 1: enforcement
	{"SEC sues Binance over unregistered securities", "The regulator filed a lawsuit on Monday.", 1},
	{"DOJ charges exchange founder with fraud", "Prosecutors announced charges against the founder.", 1},
	{"Founder of collapsed lender pleads guilty", "He pleads guilty to two counts of wire fraud.", 1},
	// Tier 1: exploits
	{"Cross-chain bridge drained of $120M", "Attackers exploited a signature verification flaw, funds were drained.", 1},
	{"Lending protocol hit by flash loan attack", "The exploit netted roughly $8M before a patch shipped.", 1},
	{"Wallet provider discloses critical vulnerability", "A vulnerability in key generation affects 10,000 users.", 1},
	// Tier 1: regulatory
	{"SEC approves spot Ethereum ETF applications", "The decision clears the way for trading.", 1},
	{"EU finalizes MiCA technical standards", "The mica framework enters application next quarter.", 1},
	// Tier 1: ETF flows
	{"Bitcoin ETFs see inflows of $1.2 billion in a week", "Spot funds continued their streak.", 1},
	// Tier 1: protocol events
	{"Ethereum schedules next network upgrade for March", "Core developers set the hard fork block height.", 1},
	{"Solana suffers chain halt for four hours", "Validators restarted the network after the outage.", 1},
	{"Bitcoin halving completes at block 840000", "The halving cut issuance to 3.125 BTC per block.", 1},
	// Tier 1: nation-state
	{"Nation weighs bitcoin as strategic reserve asset", "A bill establishing a national reserve passed committee.", 1},
	// Tier 2: ordinary market/industry news
	{"Coinbase reports Q3 earnings beat", "Revenue rose 14% on higher trading volume.", 2},
	{"Stablecoin issuer expands into Latin America", "The company opened offices in three countries.", 2},
	{"Mining difficulty reaches new all-time high", "Hashrate growth continued through the month.", 2},
	{"Layer-2 ecosystem sees record developer activity", "Monthly active developers grew 8%.", 2},
	{"Exchange lists new governance token", "Trading pairs open on Thursday.", 2},
	{"DeFi TVL recovers to $90B", "Total value locked rose across major protocols.", 2},
	{"Asset manager files for index fund", "The filing covers a basket of large-cap assets.", 2},
	// Tier 3: predictions/listicles/noise
	{"Bitcoin price prediction: can BTC hit $150K this year?", "Analysts weigh in on targets.", 3},
	{"Top 10 coins to watch in December", "Our monthly roundup of promising tokens.", 3},
	{"Will Dogecoin reach $1 by 2027?", "Will dogecoin hit $1? Our model says maybe.", 3},
	{"Best altcoins to buy before the next rally", "Five picks from our research desk.", 3},
	{"Crypto horoscope: what the stars say about your portfolio", "Mercury retrograde and market cycles.", 3},
	{"5 altcoins that could 100x", "Five cryptos to watch closely this cycle.", 3},
	{"XRP price forecast for next month", "Technical analysis and price forecast levels.", 3},
	{"Stocks to watch: tech rally continues", "Premarket movers include chipmakers.", 3},
	{"New NFT game review: is it worth playing?", "Our nft game review covers gameplay and tokenomics.", 3},
	{"Casino bonus codes for crypto gamblers", "The latest casino bonus offers.", 3},
}

func TestClassifyGoldenSet(t *testing.T) {
	agree := 0
	for _, g := range goldenSet {
		got := Classify(g.title, g.text)
		if got.Tier == g.tier {
			agree++
		} else {
			t.Logf("disagreement: %q labeled %d, classified %d (%s)", g.title, g.tier, got.Tier, got.Reason)
		}
	}
	accuracy := float64(agree) / float64(len(goldenSet))
	require.GreaterOrEqual(t, accuracy, 0.9, "golden set agreement %.2f", accuracy)
}

func TestClassifyDeterministic(t *testing.T) {
	for _, g := range goldenSet {
		first := Classify(g.title, g.text)
		second := Classify(g.title, g.text)
		assert.Equal(t, first, second)
	}
}

func TestClassifyExclusionWinsOverPromotion(t *testing.T) {
	// A prediction piece that mentions the SEC must stay tier 3.
	got := Classify("Bitcoin price prediction after SEC lawsuit news", "Can BTC hit new highs despite the lawsuit?")
	assert.Equal(t, 3, got.Tier)
	assert.Equal(t, "price_prediction", got.MatchedPattern)
}

func TestClassifyDefaultTier(t *testing.T) {
	got := Classify("Weekly industry digest", "A calm week across markets.")
	assert.Equal(t, 2, got.Tier)
	assert.Empty(t, got.MatchedPattern)
}
