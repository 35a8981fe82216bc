// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/apicost"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/schema"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apicostFields := schema.APICost{}.Fields()
	_ = apicostFields
	// apicostDescTimestamp is the schema descriptor for timestamp field.
	apicostDescTimestamp := apicostFields[1].Descriptor()
	// apicost.DefaultTimestamp holds the default value on creation for the timestamp field.
	apicost.DefaultTimestamp = apicostDescTimestamp.Default.(func() time.Time)
	// apicostDescInputTokens is the schema descriptor for input_tokens field.
	apicostDescInputTokens := apicostFields[4].Descriptor()
	// apicost.DefaultInputTokens holds the default value on creation for the input_tokens field.
	apicost.DefaultInputTokens = apicostDescInputTokens.Default.(int)
	// apicostDescOutputTokens is the schema descriptor for output_tokens field.
	apicostDescOutputTokens := apicostFields[5].Descriptor()
	// apicost.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	apicost.DefaultOutputTokens = apicostDescOutputTokens.Default.(int)
	// apicostDescCostUsd is the schema descriptor for cost_usd field.
	apicostDescCostUsd := apicostFields[6].Descriptor()
	// apicost.DefaultCostUsd holds the default value on creation for the cost_usd field.
	apicost.DefaultCostUsd = apicostDescCostUsd.Default.(float64)
	// apicostDescCached is the schema descriptor for cached field.
	apicostDescCached := apicostFields[7].Descriptor()
	// apicost.DefaultCached holds the default value on creation for the cached field.
	apicost.DefaultCached = apicostDescCached.Default.(bool)
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescCreatedAt is the schema descriptor for created_at field.
	articleDescCreatedAt := articleFields[6].Descriptor()
	// article.DefaultCreatedAt holds the default value on creation for the created_at field.
	article.DefaultCreatedAt = articleDescCreatedAt.Default.(func() time.Time)
	narrativeFields := schema.Narrative{}.Fields()
	_ = narrativeFields
	// narrativeDescArticleCount is the schema descriptor for article_count field.
	narrativeDescArticleCount := narrativeFields[7].Descriptor()
	// narrative.DefaultArticleCount holds the default value on creation for the article_count field.
	narrative.DefaultArticleCount = narrativeDescArticleCount.Default.(int)
	// narrativeDescMentionVelocity is the schema descriptor for mention_velocity field.
	narrativeDescMentionVelocity := narrativeFields[11].Descriptor()
	// narrative.DefaultMentionVelocity holds the default value on creation for the mention_velocity field.
	narrative.DefaultMentionVelocity = narrativeDescMentionVelocity.Default.(float64)
	// narrativeDescRecencyScore is the schema descriptor for recency_score field.
	narrativeDescRecencyScore := narrativeFields[13].Descriptor()
	// narrative.DefaultRecencyScore holds the default value on creation for the recency_score field.
	narrative.DefaultRecencyScore = narrativeDescRecencyScore.Default.(float64)
	// narrativeDescFirstSeen is the schema descriptor for first_seen field.
	narrativeDescFirstSeen := narrativeFields[14].Descriptor()
	// narrative.DefaultFirstSeen holds the default value on creation for the first_seen field.
	narrative.DefaultFirstSeen = narrativeDescFirstSeen.Default.(func() time.Time)
	// narrativeDescLastUpdated is the schema descriptor for last_updated field.
	narrativeDescLastUpdated := narrativeFields[15].Descriptor()
	// narrative.DefaultLastUpdated holds the default value on creation for the last_updated field.
	narrative.DefaultLastUpdated = narrativeDescLastUpdated.Default.(func() time.Time)
	// narrativeDescDaysActive is the schema descriptor for days_active field.
	narrativeDescDaysActive := narrativeFields[16].Descriptor()
	// narrative.DefaultDaysActive holds the default value on creation for the days_active field.
	narrative.DefaultDaysActive = narrativeDescDaysActive.Default.(int)
	// narrativeDescReawakeningCount is the schema descriptor for reawakening_count field.
	narrativeDescReawakeningCount := narrativeFields[17].Descriptor()
	// narrative.DefaultReawakeningCount holds the default value on creation for the reawakening_count field.
	narrative.DefaultReawakeningCount = narrativeDescReawakeningCount.Default.(int)
	// narrativeDescVersion is the schema descriptor for version field.
	narrativeDescVersion := narrativeFields[22].Descriptor()
	// narrative.DefaultVersion holds the default value on creation for the version field.
	narrative.DefaultVersion = narrativeDescVersion.Default.(int)
	signalscoreFields := schema.SignalScore{}.Fields()
	_ = signalscoreFields
	// signalscoreDescFirstSeen is the schema descriptor for first_seen field.
	signalscoreDescFirstSeen := signalscoreFields[3].Descriptor()
	// signalscore.DefaultFirstSeen holds the default value on creation for the first_seen field.
	signalscore.DefaultFirstSeen = signalscoreDescFirstSeen.Default.(func() time.Time)
	// signalscoreDescUpdatedAt is the schema descriptor for updated_at field.
	signalscoreDescUpdatedAt := signalscoreFields[4].Descriptor()
	// signalscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	signalscore.DefaultUpdatedAt = signalscoreDescUpdatedAt.Default.(func() time.Time)
	// signalscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	signalscore.UpdateDefaultUpdatedAt = signalscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	// signalscoreDescScore24h is the schema descriptor for score_24h field.
	signalscoreDescScore24h := signalscoreFields[5].Descriptor()
	// signalscore.DefaultScore24h holds the default value on creation for the score_24h field.
	signalscore.DefaultScore24h = signalscoreDescScore24h.Default.(float64)
	// signalscoreDescVelocity24h is the schema descriptor for velocity_24h field.
	signalscoreDescVelocity24h := signalscoreFields[6].Descriptor()
	// signalscore.DefaultVelocity24h holds the default value on creation for the velocity_24h field.
	signalscore.DefaultVelocity24h = signalscoreDescVelocity24h.Default.(float64)
	// signalscoreDescMentions24h is the schema descriptor for mentions_24h field.
	signalscoreDescMentions24h := signalscoreFields[7].Descriptor()
	// signalscore.DefaultMentions24h holds the default value on creation for the mentions_24h field.
	signalscore.DefaultMentions24h = signalscoreDescMentions24h.Default.(int)
	// signalscoreDescRecency24h is the schema descriptor for recency_24h field.
	signalscoreDescRecency24h := signalscoreFields[8].Descriptor()
	// signalscore.DefaultRecency24h holds the default value on creation for the recency_24h field.
	signalscore.DefaultRecency24h = signalscoreDescRecency24h.Default.(float64)
	// signalscoreDescScore7d is the schema descriptor for score_7d field.
	signalscoreDescScore7d := signalscoreFields[9].Descriptor()
	// signalscore.DefaultScore7d holds the default value on creation for the score_7d field.
	signalscore.DefaultScore7d = signalscoreDescScore7d.Default.(float64)
	// signalscoreDescVelocity7d is the schema descriptor for velocity_7d field.
	signalscoreDescVelocity7d := signalscoreFields[10].Descriptor()
	// signalscore.DefaultVelocity7d holds the default value on creation for the velocity_7d field.
	signalscore.DefaultVelocity7d = signalscoreDescVelocity7d.Default.(float64)
	// signalscoreDescMentions7d is the schema descriptor for mentions_7d field.
	signalscoreDescMentions7d := signalscoreFields[11].Descriptor()
	// signalscore.DefaultMentions7d holds the default value on creation for the mentions_7d field.
	signalscore.DefaultMentions7d = signalscoreDescMentions7d.Default.(int)
	// signalscoreDescRecency7d is the schema descriptor for recency_7d field.
	signalscoreDescRecency7d := signalscoreFields[12].Descriptor()
	// signalscore.DefaultRecency7d holds the default value on creation for the recency_7d field.
	signalscore.DefaultRecency7d = signalscoreDescRecency7d.Default.(float64)
	// signalscoreDescScore30d is the schema descriptor for score_30d field.
	signalscoreDescScore30d := signalscoreFields[13].Descriptor()
	// signalscore.DefaultScore30d holds the default value on creation for the score_30d field.
	signalscore.DefaultScore30d = signalscoreDescScore30d.Default.(float64)
	// signalscoreDescVelocity30d is the schema descriptor for velocity_30d field.
	signalscoreDescVelocity30d := signalscoreFields[14].Descriptor()
	// signalscore.DefaultVelocity30d holds the default value on creation for the velocity_30d field.
	signalscore.DefaultVelocity30d = signalscoreDescVelocity30d.Default.(float64)
	// signalscoreDescMentions30d is the schema descriptor for mentions_30d field.
	signalscoreDescMentions30d := signalscoreFields[15].Descriptor()
	// signalscore.DefaultMentions30d holds the default value on creation for the mentions_30d field.
	signalscore.DefaultMentions30d = signalscoreDescMentions30d.Default.(int)
	// signalscoreDescRecency30d is the schema descriptor for recency_30d field.
	signalscoreDescRecency30d := signalscoreFields[16].Descriptor()
	// signalscore.DefaultRecency30d holds the default value on creation for the recency_30d field.
	signalscore.DefaultRecency30d = signalscoreDescRecency30d.Default.(float64)
	// signalscoreDescSentimentAvg is the schema descriptor for sentiment_avg field.
	signalscoreDescSentimentAvg := signalscoreFields[17].Descriptor()
	// signalscore.DefaultSentimentAvg holds the default value on creation for the sentiment_avg field.
	signalscore.DefaultSentimentAvg = signalscoreDescSentimentAvg.Default.(float64)
	// signalscoreDescSentimentMin is the schema descriptor for sentiment_min field.
	signalscoreDescSentimentMin := signalscoreFields[18].Descriptor()
	// signalscore.DefaultSentimentMin holds the default value on creation for the sentiment_min field.
	signalscore.DefaultSentimentMin = signalscoreDescSentimentMin.Default.(float64)
	// signalscoreDescSentimentMax is the schema descriptor for sentiment_max field.
	signalscoreDescSentimentMax := signalscoreFields[19].Descriptor()
	// signalscore.DefaultSentimentMax holds the default value on creation for the sentiment_max field.
	signalscore.DefaultSentimentMax = signalscoreDescSentimentMax.Default.(float64)
	// signalscoreDescSentimentDivergence is the schema descriptor for sentiment_divergence field.
	signalscoreDescSentimentDivergence := signalscoreFields[20].Descriptor()
	// signalscore.DefaultSentimentDivergence holds the default value on creation for the sentiment_divergence field.
	signalscore.DefaultSentimentDivergence = signalscoreDescSentimentDivergence.Default.(float64)
	// signalscoreDescSourceCount is the schema descriptor for source_count field.
	signalscoreDescSourceCount := signalscoreFields[21].Descriptor()
	// signalscore.DefaultSourceCount holds the default value on creation for the source_count field.
	signalscore.DefaultSourceCount = signalscoreDescSourceCount.Default.(int)
	// signalscoreDescIsEmerging is the schema descriptor for is_emerging field.
	signalscoreDescIsEmerging := signalscoreFields[23].Descriptor()
	// signalscore.DefaultIsEmerging holds the default value on creation for the is_emerging field.
	signalscore.DefaultIsEmerging = signalscoreDescIsEmerging.Default.(bool)
}
