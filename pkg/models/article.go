package models

import "time"

// Sentiment labels assigned by the extractor at article and mention level.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Relevance tiers. Tier 3 articles are excluded from signal scoring.
const (
	TierHigh   = 1
	TierMedium = 2
	TierLow    = 3
)

// IncomingArticle is the ingestion contract: the fields a feed adapter
// must supply when upserting an article.
type IncomingArticle struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// ArticleFilters narrows article queries in the services layer.
type ArticleFilters struct {
	Since         *time.Time
	Until         *time.Time
	Source        string
	Tiers         []int
	HasNucleus    bool
	Unenriched    bool
	NarrativeID   string
	Limit         int
}

// SentimentValue maps a sentiment label to its numeric value
// (positive=+1, neutral=0, negative=-1). Unknown labels map to 0.
func SentimentValue(label string) float64 {
	switch label {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return -1
	default:
		return 0
	}
}
