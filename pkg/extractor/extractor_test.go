package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/llm"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

type fakeLLM struct {
	responses []llm.GenerateResponse
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, req.Prompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.responses) {
		return nil, fmt.Errorf("unexpected call %d", i)
	}
	resp := f.responses[i]
	return &resp, nil
}

type fakeCosts struct {
	records []CostRecord
}

func (f *fakeCosts) RecordCost(_ context.Context, rec CostRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func validArticleJSON(id, nucleus string) string {
	return fmt.Sprintf(`{
		"article_id": %q,
		"entities": [{"type": "cryptocurrency", "value": "btc", "confidence": 0.95},
		             {"type": "person", "value": "Jerome Powell", "confidence": 0.8}],
		"sentiment": "positive",
		"nucleus_entity": %q,
		"actors": ["btc", "Jerome Powell"],
		"actor_salience": {"btc": 5, "Jerome Powell": 3},
		"key_actions": ["rallied past 100k"],
		"narrative_summary": "Bitcoin rallied."
	}`, id, nucleus)
}

func batchJSON(articles ...string) string {
	out := `{"articles":[`
	for i, a := range articles {
		if i > 0 {
			out += ","
		}
		out += a
	}
	return out + `]}`
}

func newTestExtractor(client llm.Client, costs CostRecorder) *Extractor {
	return New(client, "gemini-2.5-flash", llm.NewPromptCache(time.Minute), costs, slog.Default())
}

func TestExtractBatchNormalizesAndRecordsCost(t *testing.T) {
	fake := &fakeLLM{responses: []llm.GenerateResponse{{
		Text:         batchJSON(validArticleJSON("a1", "btc")),
		InputTokens:  1200,
		OutputTokens: 300,
	}}}
	costs := &fakeCosts{}

	result, err := newTestExtractor(fake, costs).ExtractBatch(context.Background(),
		[]Input{{ID: "a1", Title: "BTC rallies", Text: "Bitcoin is up."}})
	require.NoError(t, err)

	require.Len(t, result.Articles, 1)
	ext := result.Articles[0]
	assert.Equal(t, "a1", ext.ArticleID)
	assert.Equal(t, "Bitcoin", ext.NucleusEntity)
	assert.Equal(t, []string{"Bitcoin", "Jerome Powell"}, ext.Actors)
	assert.Equal(t, 5, ext.ActorSalience["Bitcoin"])

	require.Len(t, ext.Entities, 2)
	assert.Equal(t, "Bitcoin", ext.Entities[0].Value)
	assert.True(t, ext.Entities[0].IsPrimary)
	assert.False(t, ext.Entities[1].IsPrimary)

	assert.Zero(t, result.Skipped)
	require.Len(t, costs.records, 1)
	assert.False(t, costs.records[0].Cached)
	assert.Greater(t, costs.records[0].CostUSD, 0.0)
	assert.Equal(t, "entity_extraction", costs.records[0].Operation)
}

func TestExtractBatchPromptCacheHit(t *testing.T) {
	fake := &fakeLLM{responses: []llm.GenerateResponse{{
		Text:        batchJSON(validArticleJSON("a1", "btc")),
		InputTokens: 500,
	}}}
	costs := &fakeCosts{}
	ex := newTestExtractor(fake, costs)
	articles := []Input{{ID: "a1", Title: "t", Text: "x"}}

	first, err := ex.ExtractBatch(context.Background(), articles)
	require.NoError(t, err)
	second, err := ex.ExtractBatch(context.Background(), articles)
	require.NoError(t, err)

	// One real call; the rerun is served from the prompt cache.
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, first.Articles, second.Articles)
	assert.True(t, second.Usage.Cached)
	assert.Zero(t, second.Usage.CostUSD)

	// Both runs are cost-recorded, the second at zero cost.
	require.Len(t, costs.records, 2)
	assert.False(t, costs.records[0].Cached)
	assert.True(t, costs.records[1].Cached)
	assert.Zero(t, costs.records[1].CostUSD)
	assert.NotEmpty(t, costs.records[1].CacheKey)
}

func TestExtractBatchRetriesInvalidArticleIndividually(t *testing.T) {
	invalid := `{"article_id": "a2", "entities": [{"type": "cryptocurrency", "value": "eth", "confidence": 0.9}],
		"sentiment": "positive", "nucleus_entity": "", "actors": [], "actor_salience": {},
		"key_actions": [], "narrative_summary": ""}`

	fake := &fakeLLM{responses: []llm.GenerateResponse{
		{Text: batchJSON(validArticleJSON("a1", "btc"), invalid)},
		{Text: batchJSON(validArticleJSON("a2", "eth"))},
	}}

	result, err := newTestExtractor(fake, &fakeCosts{}).ExtractBatch(context.Background(),
		[]Input{{ID: "a1"}, {ID: "a2"}})
	require.NoError(t, err)

	assert.Equal(t, 2, fake.calls)
	assert.Zero(t, result.Skipped)
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "Ethereum", result.Articles[1].NucleusEntity)
}

func TestExtractBatchSkipsAfterSecondFailure(t *testing.T) {
	bad := `{"article_id": "a1", "entities": [], "sentiment": "positive",
		"nucleus_entity": "x", "actors": [], "actor_salience": {}, "key_actions": [],
		"narrative_summary": ""}`

	fake := &fakeLLM{responses: []llm.GenerateResponse{
		{Text: batchJSON(bad)},
		{Text: batchJSON(bad)},
	}}

	result, err := newTestExtractor(fake, &fakeCosts{}).ExtractBatch(context.Background(),
		[]Input{{ID: "a1"}})
	require.NoError(t, err)

	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Articles)
}

func TestExtractBatchMissingArticleRetried(t *testing.T) {
	// The batch response omits a2 entirely.
	fake := &fakeLLM{responses: []llm.GenerateResponse{
		{Text: batchJSON(validArticleJSON("a1", "btc"))},
		{Text: batchJSON(validArticleJSON("a2", "sol"))},
	}}

	result, err := newTestExtractor(fake, &fakeCosts{}).ExtractBatch(context.Background(),
		[]Input{{ID: "a1"}, {ID: "a2"}})
	require.NoError(t, err)

	assert.Equal(t, 2, fake.calls)
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "Solana", result.Articles[1].NucleusEntity)
}

func TestExtractBatchPropagatesTransportError(t *testing.T) {
	fake := &fakeLLM{errs: []error{fmt.Errorf("network down")}}
	_, err := newTestExtractor(fake, &fakeCosts{}).ExtractBatch(context.Background(),
		[]Input{{ID: "a1"}})
	require.Error(t, err)
}

func TestContentHash(t *testing.T) {
	h1 := ContentHash("title", "text")
	assert.Equal(t, h1, ContentHash("title", "text"))
	assert.NotEqual(t, h1, ContentHash("title", "other"))
	assert.NotEqual(t, h1, ContentHash("titletext", ""))
	assert.True(t, strings.HasPrefix(h1, HashPrefix))
	assert.Len(t, h1, len(HashPrefix)+64)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}

func TestValidate(t *testing.T) {
	good := models.ArticleExtraction{
		NucleusEntity: "Bitcoin",
		Sentiment:     models.SentimentNeutral,
		Entities:      []models.ExtractedEntity{{Type: "cryptocurrency", Value: "Bitcoin", Confidence: 0.9}},
		ActorSalience: map[string]int{"Bitcoin": 5},
	}
	assert.NoError(t, validate(good))

	bad := good
	bad.ActorSalience = map[string]int{"Bitcoin": 6}
	assert.Error(t, validate(bad))

	bad = good
	bad.Sentiment = "euphoric"
	assert.Error(t, validate(bad))

	bad = good
	bad.Entities = []models.ExtractedEntity{{Type: "meme", Value: "doge", Confidence: 0.5}}
	assert.Error(t, validate(bad))
}
